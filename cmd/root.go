package cmd

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve   ServeCmd   `cmd:"" default:"1"                                   help:"Run the server"`
	Migrate MigrateCmd `cmd:"" help:"Run database migrations"`
	Export  ExportCmd  `cmd:"" help:"Export a collection to a file"`
	Import  ImportCmd  `cmd:"" help:"Import a collection file"`
	Backup  BackupCmd  `cmd:"" help:"Run scheduled backups of every collection"`
	Stats   StatsCmd   `cmd:"" help:"Show collection statistics"`
	Lookup  LookupCmd  `cmd:"" help:"Look a brand up in the configured catalogues"`
	AddUser AddUserCmd `cmd:"" help:"Create an account"`
}
