package settings

// Field names match the GitHub repository API properties they update
const (
	FieldSquashTitle   = "squash_merge_commit_title"
	FieldSquashMessage = "squash_merge_commit_message"
	FieldMergeTitle    = "merge_commit_title"
	FieldMergeMessage  = "merge_commit_message"
)

// FieldChange records one setting that differs from the desired value
type FieldChange struct {
	Field   string
	Current string
	Desired string
}

// ChangeSet is the ordered list of settings that need updating on a
// repository. An empty ChangeSet means the repository already matches.
type ChangeSet struct {
	Changes []FieldChange
}

// Empty returns true when no field needs updating
func (c ChangeSet) Empty() bool {
	return len(c.Changes) == 0
}

// Len returns the number of fields that need updating
func (c ChangeSet) Len() int {
	return len(c.Changes)
}

// Diff computes the changes needed to move current to desired. Squash
// fields are only considered when squash merging is enabled, and merge
// commit fields only when merge commits are enabled; settings for a
// disabled strategy would have no effect and are suppressed. Fields are
// emitted in a fixed order so output is stable across runs.
func Diff(current MergeSettings, desired DesiredSettings) ChangeSet {
	var changes []FieldChange

	if current.SquashAllowed {
		if desired.SquashTitle != nil && current.SquashTitle != *desired.SquashTitle {
			changes = append(changes, FieldChange{
				Field:   FieldSquashTitle,
				Current: string(current.SquashTitle),
				Desired: string(*desired.SquashTitle),
			})
		}
		if desired.SquashMessage != nil && current.SquashMessage != *desired.SquashMessage {
			changes = append(changes, FieldChange{
				Field:   FieldSquashMessage,
				Current: string(current.SquashMessage),
				Desired: string(*desired.SquashMessage),
			})
		}
	}

	if current.MergeAllowed {
		if desired.MergeTitle != nil && current.MergeTitle != *desired.MergeTitle {
			changes = append(changes, FieldChange{
				Field:   FieldMergeTitle,
				Current: string(current.MergeTitle),
				Desired: string(*desired.MergeTitle),
			})
		}
		if desired.MergeMessage != nil && current.MergeMessage != *desired.MergeMessage {
			changes = append(changes, FieldChange{
				Field:   FieldMergeMessage,
				Current: string(current.MergeMessage),
				Desired: string(*desired.MergeMessage),
			})
		}
	}

	return ChangeSet{Changes: changes}
}
