package repl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/emberdb/ember"
	"github.com/peterh/liner"
)

// Repl is an interactive loop over an embedded database connection.
type Repl struct {
	ctx         context.Context
	stop        context.CancelFunc
	conn        *ember.Conn
	rows        *ember.RowSet
	historyPath string
}

func NewRepl(
	ctx context.Context,
	stop context.CancelFunc,
	conn *ember.Conn,
) Repl {
	return Repl{
		ctx:         ctx,
		stop:        stop,
		conn:        conn,
		rows:        &ember.RowSet{},
		historyPath: filepath.Join(os.TempDir(), ".ember_history"),
	}
}

func (r *Repl) Start() error {
	fmt.Println(`Enter ".help" for usage hints and ".quit" or "CTRL+C" to quit`)
	fmt.Println()

	for {
		select {
		case <-r.ctx.Done():
			return nil
		default:
			input := r.prompt()

			if input == "" {
				continue
			}

			if input == "exit" || input == ".exit" || input == ".quit" {
				r.Shutdown()
				return nil
			}

			if input == "clear" || input == ".clear" {
				clearTerminal()
				continue
			}

			if input == "help" || input == ".help" {
				cmdHelp()
				continue
			}

			if input == ".tables" {
				cmdQuery(r, `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
				continue
			}

			if input == ".schema" {
				cmdQuery(r, `SELECT sql FROM sqlite_master WHERE sql IS NOT NULL`)
				continue
			}

			if name, ok := strings.CutPrefix(input, ".columns "); ok {
				cmdQuery(r, fmt.Sprintf("SELECT name, type FROM pragma_table_info('%s')", strings.TrimSpace(name)))
				continue
			}

			if strings.HasPrefix(input, ".") {
				fmt.Println("Unknown command, type .help for usage hints")
				continue
			}

			cmdQuery(r, input)
		}
	}
}

// Shutdown stops the REPL and releases the result cursor.
func (r *Repl) Shutdown() {
	r.rows.Close()
	r.stop()
}

// prompt reads a single line of input with history and completion.
func (r *Repl) prompt() string {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(cmdHelpCompleter)

	if file, err := os.Open(r.historyPath); err == nil {
		_, _ = line.ReadHistory(file)
		file.Close()
	}

	input, err := line.Prompt("ember> ")
	if err != nil {
		if err == liner.ErrPromptAborted {
			fmt.Println("CTRL+C pressed, exiting...")
			return ".quit"
		}
		return ""
	}

	input = strings.TrimSpace(input)
	if input != "" {
		line.AppendHistory(input)
		if file, err := os.Create(r.historyPath); err == nil {
			_, _ = line.WriteHistory(file)
			file.Close()
		}
	}

	return input
}

func clearTerminal() {
	fmt.Print("\033[2J\033[H")
}
