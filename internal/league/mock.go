package league

import "sync"

// MockStore is a mock implementation of the LeagueStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	ListPlayersFunc      func() ([]Player, error)
	GetPlayerFunc        func(id int) (*Player, error)
	CreatePlayerFunc     func(p Player) (Player, error)
	UpdatePlayerFunc     func(p Player) error
	DeletePlayerFunc     func(id int) error
	ListTeamsFunc        func() ([]Team, error)
	GetTeamFunc          func(id int) (*Team, error)
	CreateTeamFunc       func(t Team) (Team, error)
	UpdateTeamFunc       func(t Team) error
	DeleteTeamFunc       func(id int) error
	ListGamesFunc        func() ([]Game, error)
	GetGameFunc          func(id int) (*Game, error)
	GamesForTeamFunc     func(teamID int) ([]Game, error)
	CreateGameFunc       func(g Game) (Game, error)
	UpdateGameFunc       func(g Game) error
	DeleteGameFunc       func(id int) error
	CurrentWeekFunc      func() (Week, error)
	SetCurrentWeekFunc   func(w Week) error
	ApplyMatchResultFunc func(deltas map[int]StatLine, winnerID, loserID int, record SubmissionRecord) error
	ListSubmissionsFunc  func() ([]SubmissionRecord, error)
	ClearFunc            func()

	// Call records
	ApplyMatchResultCalls []struct {
		Deltas   map[int]StatLine
		WinnerID int
		LoserID  int
		Record   SubmissionRecord
	}
	SetCurrentWeekCalls []Week
}

var _ LeagueStore = (*MockStore)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) ListPlayers() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) GetPlayer(id int) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(id)
	}
	return nil, nil
}

func (m *MockStore) CreatePlayer(p Player) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreatePlayerFunc != nil {
		return m.CreatePlayerFunc(p)
	}
	return p, nil
}

func (m *MockStore) UpdatePlayer(p Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdatePlayerFunc != nil {
		return m.UpdatePlayerFunc(p)
	}
	return nil
}

func (m *MockStore) DeletePlayer(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeletePlayerFunc != nil {
		return m.DeletePlayerFunc(id)
	}
	return nil
}

func (m *MockStore) ListTeams() ([]Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc()
	}
	return nil, nil
}

func (m *MockStore) GetTeam(id int) (*Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(id)
	}
	return nil, nil
}

func (m *MockStore) CreateTeam(t Team) (Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(t)
	}
	return t, nil
}

func (m *MockStore) UpdateTeam(t Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateTeamFunc != nil {
		return m.UpdateTeamFunc(t)
	}
	return nil
}

func (m *MockStore) DeleteTeam(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteTeamFunc != nil {
		return m.DeleteTeamFunc(id)
	}
	return nil
}

func (m *MockStore) ListGames() ([]Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListGamesFunc != nil {
		return m.ListGamesFunc()
	}
	return nil, nil
}

func (m *MockStore) GetGame(id int) (*Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetGameFunc != nil {
		return m.GetGameFunc(id)
	}
	return nil, nil
}

func (m *MockStore) GamesForTeam(teamID int) ([]Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GamesForTeamFunc != nil {
		return m.GamesForTeamFunc(teamID)
	}
	return nil, nil
}

func (m *MockStore) CreateGame(g Game) (Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateGameFunc != nil {
		return m.CreateGameFunc(g)
	}
	return g, nil
}

func (m *MockStore) UpdateGame(g Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateGameFunc != nil {
		return m.UpdateGameFunc(g)
	}
	return nil
}

func (m *MockStore) DeleteGame(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteGameFunc != nil {
		return m.DeleteGameFunc(id)
	}
	return nil
}

func (m *MockStore) CurrentWeek() (Week, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CurrentWeekFunc != nil {
		return m.CurrentWeekFunc()
	}
	return 1, nil
}

func (m *MockStore) SetCurrentWeek(w Week) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCurrentWeekCalls = append(m.SetCurrentWeekCalls, w)
	if m.SetCurrentWeekFunc != nil {
		return m.SetCurrentWeekFunc(w)
	}
	return nil
}

func (m *MockStore) ApplyMatchResult(deltas map[int]StatLine, winnerID, loserID int, record SubmissionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ApplyMatchResultCalls = append(m.ApplyMatchResultCalls, struct {
		Deltas   map[int]StatLine
		WinnerID int
		LoserID  int
		Record   SubmissionRecord
	}{deltas, winnerID, loserID, record})
	if m.ApplyMatchResultFunc != nil {
		return m.ApplyMatchResultFunc(deltas, winnerID, loserID, record)
	}
	return nil
}

func (m *MockStore) ListSubmissions() ([]SubmissionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListSubmissionsFunc != nil {
		return m.ListSubmissionsFunc()
	}
	return nil, nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}
