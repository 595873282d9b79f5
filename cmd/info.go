/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/stlgrid/generator"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the configuration and one cell's geometry without writing files",
	Long: `
Validates the configuration, prints a summary and the computed geometry of a
single cell (default cell 0,0). No files are written.`,
	Run: func(cmd *cobra.Command, args []string) {
		ip, err := buildParameters(cmd)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		gg, err := generator.NewGridGenerator(ip, nil)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		ip.Print()
		fmt.Println()
		i, _ := cmd.Flags().GetInt("i")
		j, _ := cmd.Flags().GetInt("j")
		info, err := gg.CellInfo(i, j)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		info.Print()
	},
}

func init() {
	rootCmd.AddCommand(InfoCmd)
	registerParameterFlags(InfoCmd)
	InfoCmd.Flags().Int("i", 0, "cell column index to inspect")
	InfoCmd.Flags().Int("j", 0, "cell row index to inspect")
}
