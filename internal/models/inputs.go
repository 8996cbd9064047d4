package models

// PostInput is the post payload for postCreate and postUpdate. Both fields are
// optional at the transport level; create requires both, update requires at
// least one (enforced by the post service, not the schema).
type PostInput struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// PostPatch is the sparse update written to the store: only non-nil fields are
// included in the write, omitted fields are left untouched.
type PostPatch struct {
	Title   *string
	Content *string
}
