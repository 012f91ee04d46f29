package server

// Server groups the entity-specific HTTP servers. The token server is the
// only one so far.
type Server struct {
	TokenServer
}

func NewServer(
	tokenServer TokenServer,
) Server {
	return Server{
		TokenServer: tokenServer,
	}
}
