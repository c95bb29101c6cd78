package league

// LeagueStore defines the interface for interacting with the league's data.
type LeagueStore interface {
	ListPlayers() ([]Player, error)
	GetPlayer(id int) (*Player, error)
	CreatePlayer(p Player) (Player, error)
	UpdatePlayer(p Player) error
	DeletePlayer(id int) error

	ListTeams() ([]Team, error)
	GetTeam(id int) (*Team, error)
	CreateTeam(t Team) (Team, error)
	UpdateTeam(t Team) error
	DeleteTeam(id int) error

	ListGames() ([]Game, error)
	GetGame(id int) (*Game, error)
	GamesForTeam(teamID int) ([]Game, error)
	CreateGame(g Game) (Game, error)
	UpdateGame(g Game) error
	DeleteGame(id int) error

	CurrentWeek() (Week, error)
	SetCurrentWeek(w Week) error

	// ApplyMatchResult commits the aggregated effects of one match submission
	// in a single transaction: one counter delta per player, a win for the
	// winner, a loss for the loser, and the audit record.
	ApplyMatchResult(deltas map[int]StatLine, winnerID, loserID int, record SubmissionRecord) error

	ListSubmissions() ([]SubmissionRecord, error)

	Clear()
}
