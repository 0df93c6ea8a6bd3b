package settings_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"repokit.dev/repokit/internal/settings"
)

func TestParseSquashTitle(t *testing.T) {
	t.Run("accepts PR_TITLE", func(t *testing.T) {
		value, err := settings.ParseSquashTitle("PR_TITLE")
		require.NoError(t, err)
		require.Equal(t, settings.SquashTitlePRTitle, value)
	})

	t.Run("accepts COMMIT_OR_PR_TITLE", func(t *testing.T) {
		value, err := settings.ParseSquashTitle("COMMIT_OR_PR_TITLE")
		require.NoError(t, err)
		require.Equal(t, settings.SquashTitleCommitOrPRTitle, value)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := settings.ParseSquashTitle("TITLE")
		require.Error(t, err)
		require.Contains(t, err.Error(), "COMMIT_OR_PR_TITLE")
	})

	t.Run("rejects lowercase values", func(t *testing.T) {
		_, err := settings.ParseSquashTitle("pr_title")
		require.Error(t, err)
	})
}

func TestParseSquashMessage(t *testing.T) {
	t.Run("accepts all allowed values", func(t *testing.T) {
		for _, value := range []string{"PR_BODY", "COMMIT_MESSAGES", "BLANK"} {
			parsed, err := settings.ParseSquashMessage(value)
			require.NoError(t, err)
			require.Equal(t, value, string(parsed))
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := settings.ParseSquashMessage("PR_TITLE")
		require.Error(t, err)
	})
}

func TestParseMergeTitle(t *testing.T) {
	t.Run("accepts all allowed values", func(t *testing.T) {
		for _, value := range []string{"PR_TITLE", "MERGE_MESSAGE"} {
			parsed, err := settings.ParseMergeTitle(value)
			require.NoError(t, err)
			require.Equal(t, value, string(parsed))
		}
	})

	t.Run("rejects squash-only values", func(t *testing.T) {
		_, err := settings.ParseMergeTitle("COMMIT_OR_PR_TITLE")
		require.Error(t, err)
	})
}

func TestParseMergeMessage(t *testing.T) {
	t.Run("accepts all allowed values", func(t *testing.T) {
		for _, value := range []string{"PR_TITLE", "PR_BODY", "BLANK"} {
			parsed, err := settings.ParseMergeMessage(value)
			require.NoError(t, err)
			require.Equal(t, value, string(parsed))
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := settings.ParseMergeMessage("COMMIT_MESSAGES")
		require.Error(t, err)
	})
}

func TestHasStandardSquash(t *testing.T) {
	t.Run("true for PR_TITLE and PR_BODY", func(t *testing.T) {
		s := settings.MergeSettings{
			SquashAllowed: true,
			SquashTitle:   settings.SquashTitlePRTitle,
			SquashMessage: settings.SquashMessagePRBody,
		}
		require.True(t, s.HasStandardSquash())
	})

	t.Run("false when squash merging is disabled", func(t *testing.T) {
		s := settings.MergeSettings{
			SquashAllowed: false,
			SquashTitle:   settings.SquashTitlePRTitle,
			SquashMessage: settings.SquashMessagePRBody,
		}
		require.False(t, s.HasStandardSquash())
	})

	t.Run("false when the title comes from commits", func(t *testing.T) {
		s := settings.MergeSettings{
			SquashAllowed: true,
			SquashTitle:   settings.SquashTitleCommitOrPRTitle,
			SquashMessage: settings.SquashMessagePRBody,
		}
		require.False(t, s.HasStandardSquash())
	})
}

func TestNeedsSquashFix(t *testing.T) {
	t.Run("false when squash merging is disabled", func(t *testing.T) {
		s := settings.MergeSettings{SquashAllowed: false}
		require.False(t, s.NeedsSquashFix())
	})

	t.Run("false when already standard", func(t *testing.T) {
		s := settings.MergeSettings{
			SquashAllowed: true,
			SquashTitle:   settings.SquashTitlePRTitle,
			SquashMessage: settings.SquashMessagePRBody,
		}
		require.False(t, s.NeedsSquashFix())
	})

	t.Run("true when the message comes from commits", func(t *testing.T) {
		s := settings.MergeSettings{
			SquashAllowed: true,
			SquashTitle:   settings.SquashTitlePRTitle,
			SquashMessage: settings.SquashMessageCommitMessages,
		}
		require.True(t, s.NeedsSquashFix())
	})
}

func TestHasStandardMerge(t *testing.T) {
	t.Run("true for PR_TITLE title and message", func(t *testing.T) {
		s := settings.MergeSettings{
			MergeAllowed: true,
			MergeTitle:   settings.MergeTitlePRTitle,
			MergeMessage: settings.MergeMessagePRTitle,
		}
		require.True(t, s.HasStandardMerge())
	})

	t.Run("false when merge commits are disabled", func(t *testing.T) {
		s := settings.MergeSettings{
			MergeAllowed: false,
			MergeTitle:   settings.MergeTitlePRTitle,
			MergeMessage: settings.MergeMessagePRTitle,
		}
		require.False(t, s.HasStandardMerge())
	})
}

func TestDesiredSettings(t *testing.T) {
	t.Run("zero value is empty", func(t *testing.T) {
		require.True(t, settings.DesiredSettings{}.Empty())
	})

	t.Run("not empty with a single field", func(t *testing.T) {
		title := settings.MergeTitlePRTitle
		d := settings.DesiredSettings{MergeTitle: &title}
		require.False(t, d.Empty())
	})

	t.Run("standard squash sets title and message only", func(t *testing.T) {
		d := settings.StandardSquash()
		require.NotNil(t, d.SquashTitle)
		require.NotNil(t, d.SquashMessage)
		require.Nil(t, d.MergeTitle)
		require.Nil(t, d.MergeMessage)
		require.Equal(t, settings.SquashTitlePRTitle, *d.SquashTitle)
		require.Equal(t, settings.SquashMessagePRBody, *d.SquashMessage)
	})
}
