package api

// Wire types mirroring the server's request and response shapes.

type PlayerConfig struct {
	Name string `json:"name,omitempty"`
}

type CreateGameRequest struct {
	White PlayerConfig `json:"white"`
	Black PlayerConfig `json:"black"`
	QFEN  string       `json:"qfen,omitempty"`
}

type PlayRequest struct {
	Play string `json:"play"`
}

type UndoRequest struct {
	Count int `json:"count,omitempty"`
}

type PlayerInfo struct {
	ID    string `json:"id"`
	Color string `json:"color"`
	Name  string `json:"name,omitempty"`
}

type PlayersInfo struct {
	White PlayerInfo `json:"white"`
	Black PlayerInfo `json:"black"`
}

type PlayInfo struct {
	Play       string   `json:"play"`
	Player     string   `json:"player"`
	Suffocated []string `json:"suffocated,omitempty"`
	Converted  []string `json:"converted,omitempty"`
}

type GameResponse struct {
	GameID      string      `json:"gameId"`
	QFEN        string      `json:"qfen"`
	Turn        string      `json:"turn"`
	State       string      `json:"state"`
	Plays       []string    `json:"plays"`
	WinProgress int         `json:"winProgress"`
	Players     PlayersInfo `json:"players"`
	LastPlay    *PlayInfo   `json:"lastPlay,omitempty"`
}

type BoardResponse struct {
	QFEN  string `json:"qfen"`
	Board string `json:"board"`
}

type LegalPlaysResponse struct {
	Plays []string `json:"plays"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Time    int64  `json:"time"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
