package repl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emberdb/ember/internal/shell/styled"
	"github.com/jedib0t/go-pretty/v6/table"
)

type dotCmd struct {
	name         string
	autocomplete string
	help         string
}

func cmdHelpCommands() []dotCmd {
	cmds := []dotCmd{
		{name: ".tables", autocomplete: ".tables", help: "List all tables in the database"},
		{name: ".schema", autocomplete: ".schema", help: "Show the SQL schema of the database"},
		{name: ".columns [table_name]", autocomplete: ".columns", help: "List the columns of a table"},
		{name: ".clear", autocomplete: ".clear", help: "Clear the terminal screen"},
		{name: ".help", autocomplete: ".help", help: "Show the help message"},
		{name: ".quit", autocomplete: ".quit", help: "Exit the application"},
		{name: ".exit", autocomplete: ".exit", help: "Exit the application"},
		{name: "CTRL+c", help: "Exit the application"},
	}

	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].name < cmds[j].name
	})

	return cmds
}

func cmdHelp() {
	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Command", "Description"})
	for _, cmd := range cmdHelpCommands() {
		tw.AppendRow(table.Row{cmd.name, cmd.help})
	}
	fmt.Println(tw.Render())
}

func cmdHelpCompleter(line string) []string {
	completions := []string{}
	for _, cmd := range cmdHelpCommands() {
		if cmd.autocomplete == "" {
			continue
		}
		if strings.HasPrefix(cmd.autocomplete, strings.ToLower(line)) {
			completions = append(completions, cmd.autocomplete)
		}
	}
	return completions
}
