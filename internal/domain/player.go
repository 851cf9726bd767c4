package domain

// PlayerStats is the public player profile returned by the Clash Royale API.
// Fields the dashboard renders are typed explicitly; everything else the
// upstream sends is dropped.
type PlayerStats struct {
	Tag            string       `json:"tag"`
	Name           string       `json:"name"`
	ExpLevel       int          `json:"expLevel"`
	Trophies       int          `json:"trophies"`
	BestTrophies   int          `json:"bestTrophies"`
	Wins           int          `json:"wins"`
	Losses         int          `json:"losses"`
	BattleCount    int          `json:"battleCount"`
	ThreeCrownWins int          `json:"threeCrownWins"`
	Clan           *PlayerClan  `json:"clan,omitempty"`
	Arena          *PlayerArena `json:"arena,omitempty"`
}

type PlayerClan struct {
	Tag     string `json:"tag"`
	Name    string `json:"name"`
	BadgeID int    `json:"badgeId"`
}

type PlayerArena struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
