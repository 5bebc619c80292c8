package interaction

// BodyState names which variant of the OptionalBody sum type a value is
// in.
type BodyState int

const (
	// Missing means no body was ever set on the message.
	Missing BodyState = iota
	// EmptyBody means a body was set but is zero-length.
	EmptyBody
	// NullBody means the body is explicitly JSON null.
	NullBody
	// Present means the body holds bytes and (optionally) a content type.
	Present
	// NotPresent means the body is explicitly absent by contract, distinct
	// from Missing (which means "never specified").
	NotPresent
)

// OptionalBody models the sum type {Missing, Empty, Null, Present, NotPresent}.
type OptionalBody struct {
	State       BodyState
	Bytes       []byte
	ContentType string
}

// NewMissingBody returns the Missing variant.
func NewMissingBody() OptionalBody { return OptionalBody{State: Missing} }

// NewEmptyBody returns the Empty variant.
func NewEmptyBody() OptionalBody { return OptionalBody{State: EmptyBody} }

// NewNullBody returns the Null variant.
func NewNullBody() OptionalBody { return OptionalBody{State: NullBody} }

// NewNotPresentBody returns the NotPresent variant.
func NewNotPresentBody() OptionalBody { return OptionalBody{State: NotPresent} }

// NewPresentBody returns the Present variant carrying bytes and an
// optional content type.
func NewPresentBody(b []byte, contentType string) OptionalBody {
	return OptionalBody{State: Present, Bytes: b, ContentType: contentType}
}

// IsPresent reports whether the body carries actual bytes.
func (b OptionalBody) IsPresent() bool {
	return b.State == Present
}
