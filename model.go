package egglens

// Model identifies a chat model and the provider that serves it.
// See [github.com/spetersoncode/egglens/model] for the named models.
type Model interface {
	String() string
	Provider() Provider
}
