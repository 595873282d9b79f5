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

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/stlgrid/generator"
	"github.com/notargets/stlgrid/logger"
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the STL files for every grid cell",
	Long: `
Generates two STL files per grid cell, a solid panel and a ring panel with a
rectangular hole, into the output directory.

stlgrid generate -I params.yaml
stlgrid generate --nx 3 --ny 2 -W 15 -H 10 --sx 0.7 --sy 0.7`,
	Run: func(cmd *cobra.Command, args []string) {
		ip, err := buildParameters(cmd)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		logFile, _ := cmd.Flags().GetString("logFile")
		logger.Init(verbose, logFile)
		defer logger.Sync()
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		if verbose {
			ip.Print()
		}
		gg, err := generator.NewGridGenerator(ip, logger.Sugar)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		var filesWritten int
		jobs, _ := cmd.Flags().GetInt("jobs")
		if jobs > 1 {
			filesWritten, err = gg.GenerateParallel(jobs)
		} else {
			filesWritten, err = gg.GenerateAll()
		}
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Successfully generated %d STL files in '%s'\n", filesWritten, ip.OutDir)
	},
}

func init() {
	rootCmd.AddCommand(GenerateCmd)
	registerParameterFlags(GenerateCmd)
	GenerateCmd.Flags().IntP("jobs", "j", 1, "number of parallel generation workers")
	GenerateCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
	GenerateCmd.Flags().String("logFile", "", "also log to this rotating file")
}
