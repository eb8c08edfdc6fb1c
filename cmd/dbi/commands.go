package main

// setupCommands wires all subcommands to the root command.
func setupCommands() {
	driversCmd.AddCommand(listDriversCmd)
	driversCmd.AddCommand(resolveDriverCmd)
	rootCmd.AddCommand(driversCmd)

	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(datatypeCmd)
}
