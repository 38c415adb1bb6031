package teams

import domainteams "nfl-games-service/internal/domain/teams"

// Service exposes the franchise directory and alias resolution to the HTTP
// layer.
type Service struct{}

// NewService constructs a teams Service.
func NewService() *Service {
	return &Service{}
}

// Teams returns every current franchise.
func (s *Service) Teams() []domainteams.Team {
	return domainteams.Directory()
}

// Resolve maps a free-text name to a franchise through the alias tables.
func (s *Service) Resolve(name string) (domainteams.Team, bool) {
	return domainteams.Resolve(name)
}
