package model

// Identity はリクエストの持ち主。
// 会員（UserID > 0）か、匿名セッション（SessionToken != ""）のどちらか一方。
// リクエストごとに1回だけ解決して、そのまま下の層へ渡す。
type Identity struct {
	UserID       int64
	SessionToken string
}

func RegisteredUser(userID int64) Identity {
	return Identity{UserID: userID}
}

func AnonymousSession(token string) Identity {
	return Identity{SessionToken: token}
}

func (i Identity) IsRegistered() bool {
	return i.UserID > 0
}

// 有効なIdentityか（会員か匿名のどちらか片方だけが入っている）
func (i Identity) IsValid() bool {
	if i.UserID > 0 {
		return i.SessionToken == ""
	}
	return i.SessionToken != ""
}
