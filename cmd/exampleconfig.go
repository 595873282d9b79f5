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

	"github.com/notargets/stlgrid/InputParameters"
)

// ExampleConfigCmd represents the exampleconfig command
var ExampleConfigCmd = &cobra.Command{
	Use:   "exampleconfig [path]",
	Short: "Write an example YAML parameter file",
	Long: `
Writes a complete example parameter file to the given path (stdout when no
path is given), ready to edit and pass to generate -I.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Print(InputParameters.ExampleFile)
			return
		}
		if err := os.WriteFile(args[0], []byte(InputParameters.ExampleFile), 0o644); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Example parameter file written to: %s\n", args[0])
		fmt.Printf("Example usage:\n  stlgrid generate -I %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(ExampleConfigCmd)
}
