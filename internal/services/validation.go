package services

// Known bad game account IDs. Matching the blacklist, or a suspicious
// pattern (all identical digits, leading or trailing triple zero), rejects
// the order before any balance is touched.
var bannedGameIDs = map[string]struct{}{
	"123456789": {},
	"000000000": {},
	"111111111": {},
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateGameID checks an MLBB game ID (6-10 digits).
func ValidateGameID(gameID string) error {
	if !isDigits(gameID) || len(gameID) < 6 || len(gameID) > 10 {
		return &ValidationError{Field: "game_id", Reason: "must be 6-10 digits"}
	}
	return nil
}

// ValidateServerID checks an MLBB server ID (3-5 digits).
func ValidateServerID(serverID string) error {
	if !isDigits(serverID) || len(serverID) < 3 || len(serverID) > 5 {
		return &ValidationError{Field: "server_id", Reason: "must be 3-5 digits"}
	}
	return nil
}

// IsBannedAccount reports whether topping up this game account is blocked.
func IsBannedAccount(gameID string) bool {
	if _, ok := bannedGameIDs[gameID]; ok {
		return true
	}

	allSame := true
	for i := 1; i < len(gameID); i++ {
		if gameID[i] != gameID[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return true
	}

	if len(gameID) >= 3 && (gameID[:3] == "000" || gameID[len(gameID)-3:] == "000") {
		return true
	}

	return false
}
