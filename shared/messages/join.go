package messages

// SpectatorHello is sent by a spectator after connecting so the server can
// name it in logs and the spectator count.
type SpectatorHello struct {
	Version string
	Name    string
}
