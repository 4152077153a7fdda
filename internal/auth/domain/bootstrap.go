package domain

// BootstrapData describes the first administrator created on an empty store.
type BootstrapData struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
}
