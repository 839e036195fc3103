package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matrix/isotopes/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Print the quiz questions",
	Run: func(cmd *cobra.Command, args []string) {
		answers, _ := cmd.Flags().GetBool("answers")
		writeQuiz(cmd.OutOrStdout(), quiz.Questions(), answers)
	},
}

func init() {
	quizCmd.Flags().Bool("answers", false, "Mark the correct option")
}

func writeQuiz(w io.Writer, qs []quiz.Question, answers bool) {
	for i, q := range qs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%d/%d  %s\n", i+1, len(qs), q.Prompt)
		for j, opt := range q.Options {
			mark := " "
			if answers && j == q.CorrectIndex {
				mark = "*"
			}
			fmt.Fprintf(w, "   %s %c) %s\n", mark, 'a'+j, opt)
		}
	}
}
