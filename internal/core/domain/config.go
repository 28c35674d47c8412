package domain

// Config is everything the runtime needs to start, as read from render.yaml.
type Config struct {
	Runtime RenderRuntime
	// SessionEndpoint is called to establish a session; empty means sessions are minted locally.
	SessionEndpoint string
	// DocumentsDir holds the precompiled .graphql documents.
	DocumentsDir string
	// StateFile persists extracted client state between runs, keyed by session.
	StateFile string
	// Headers are sent with every GraphQL request.
	Headers map[string]string
}
