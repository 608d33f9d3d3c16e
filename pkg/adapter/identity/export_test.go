package identity

type AuthClient = authClient

var ClassifyVerifyError = classifyVerifyError

// NewFirebaseWithClient returns a Firebase backed by client instead of a real
// Firebase Auth client.
func NewFirebaseWithClient(client authClient, opts ...FirebaseOption) *Firebase {
	f := &Firebase{projectID: "test-project", client: client}
	for _, opt := range opts {
		opt(f)
	}
	return f
}
