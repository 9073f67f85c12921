package auth

// SessionKind classifies the acting identity behind a request.
type SessionKind string

const (
	SessionAnonymous SessionKind = "anonymous"
	SessionTrainer   SessionKind = "trainer"
	SessionStudent   SessionKind = "student"
)

// Session is the resolved acting identity. StudentID is the resource id the
// grant was issued for, set only for student sessions.
type Session struct {
	Kind      SessionKind
	TrainerID uint
	StudentID uint
}

// SessionResolver determines the acting identity from a request's
// credentials. Pure lookup, no side effects.
type SessionResolver struct {
	jwtService   *JWTService
	grantService *GrantService
}

func NewSessionResolver(jwtService *JWTService, grantService *GrantService) *SessionResolver {
	return &SessionResolver{
		jwtService:   jwtService,
		grantService: grantService,
	}
}

// Resolve classifies the caller. A valid trainer session token always takes
// precedence over a portal grant. Portal grants only yield a student session
// for the exact student they were issued for; there is no generic session
// fallback for portal access.
func (r *SessionResolver) Resolve(accessToken, grantToken string, studentID uint) Session {
	if accessToken != "" {
		if claims, err := r.jwtService.Verify(accessToken); err == nil && claims.TokenType == TokenTypeAccess {
			return Session{Kind: SessionTrainer, TrainerID: claims.TrainerID}
		}
	}

	if grantToken != "" && studentID != 0 {
		if err := r.grantService.Verify(grantToken, GrantResourceStudent, studentID); err == nil {
			return Session{Kind: SessionStudent, StudentID: studentID}
		}
	}

	return Session{Kind: SessionAnonymous}
}
