package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jasperwreed/story-memory/internal/storage"
)

func NewDeleteCommand() *cobra.Command {
	var conversationSeq int64
	var confirm bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a conversation",
		Long:  `Delete one of a user's conversations from the local database.`,
		Example: `  # Delete a conversation with confirmation
  story-memory delete --user 7 --seq 42

  # Delete without confirmation prompt
  story-memory delete --user 7 --seq 42 --yes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if conversationSeq <= 0 {
				return fmt.Errorf("--seq flag is required")
			}
			return runDelete(cmd, conversationSeq, confirm)
		},
	}

	cmd.Flags().Int64Var(&conversationSeq, "seq", 0, "Conversation sequence to delete")
	cmd.Flags().BoolVar(&confirm, "yes", false, "Skip confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, seq int64, skipConfirm bool) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.sync()

	user, err := e.user()
	if err != nil {
		return err
	}

	store, err := e.store()
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if !skipConfirm {
		fmt.Fprintf(out, "Delete conversation %d of user %d? [y/N]: ", seq, user)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	if err := store.DeleteConversation(cmd.Context(), user, seq); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("conversation %d of user %d not found", seq, user)
		}
		return fmt.Errorf("failed to delete conversation: %w", err)
	}

	fmt.Fprintf(out, "✓ Deleted conversation (user: %d, seq: %d)\n", user, seq)
	return nil
}
