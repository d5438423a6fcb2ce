package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"taskboard.com/taskboard/pkg/board"
)

var (
	boardServerURL string
	boardScope     string
	boardSearch    string
	boardEmail     string
	boardPassword  string
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the board grouped by column",
	Long:  "Fetches the task board from a running server and prints the four columns, optionally filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Debug(".env file not found, using environment variables")
		}
		if boardServerURL == "" {
			boardServerURL = os.Getenv("TASKBOARD_SERVER")
		}
		if boardServerURL == "" {
			return fmt.Errorf("no server given: use --server or TASKBOARD_SERVER")
		}

		ctx := cmd.Context()
		session := board.NewSession()
		repo := board.NewRestRepository(boardServerURL, func() string {
			return session.User().Token
		})

		if boardEmail != "" {
			identity, err := repo.Login(ctx, boardEmail, boardPassword)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			session.SetUser(identity)
		}
		if boardScope != "" {
			session.SetScope(board.Scope(boardScope))
		}

		cache := board.NewCollection(repo, session)
		if _, err := cache.Refresh(ctx); err != nil {
			return fmt.Errorf("load board: %w", err)
		}

		grouping := board.Filter(cache.ByStatus(), boardSearch)
		printBoard(cmd, grouping)
		return nil
	},
}

func printBoard(cmd *cobra.Command, grouping board.Grouping) {
	titles := map[board.Status]string{
		board.StatusTodo:          "To do",
		board.StatusInProgress:    "In progress",
		board.StatusAwaitFeedback: "Await feedback",
		board.StatusDone:          "Done",
	}

	for _, status := range board.Statuses {
		tasks := grouping.Column(status)
		cmd.Printf("%s (%d)\n", titles[status], len(tasks))
		for _, t := range tasks {
			line := fmt.Sprintf("  - [%s] %s", t.Priority, t.Title)
			if len(t.Subtasks) > 0 {
				done := 0
				for _, st := range t.Subtasks {
					if st.Completed {
						done++
					}
				}
				line += fmt.Sprintf(" (%d/%d subtasks)", done, len(t.Subtasks))
			}
			cmd.Println(line)
		}
	}
}

func init() {
	boardCmd.Flags().StringVar(&boardServerURL, "server", "", "base URL of the board server")
	boardCmd.Flags().StringVar(&boardScope, "scope", "", "board scope: public or private")
	boardCmd.Flags().StringVar(&boardSearch, "search", "", "filter tasks by title or description")
	boardCmd.Flags().StringVar(&boardEmail, "email", "", "login email (guest session when omitted)")
	boardCmd.Flags().StringVar(&boardPassword, "password", "", "login password")
	rootCmd.AddCommand(boardCmd)
}
