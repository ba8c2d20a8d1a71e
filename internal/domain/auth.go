package domain

// Auth is the credential shape sent with a query. Exactly two shapes exist:
// SimpleKey and BusinessAuth. A key can never coexist with a client or signature.
type Auth interface {
	isAuth()
}

// SimpleKey authenticates with a single API key. The key may be empty, in
// which case the request is still sent and rejected remotely.
type SimpleKey struct {
	Key string
}

// BusinessAuth authenticates with a client id and a signing secret.
type BusinessAuth struct {
	Client    string
	Signature string
}

func (SimpleKey) isAuth()    {}
func (BusinessAuth) isAuth() {}

// AuthFromCredentials picks the auth shape from process credentials: business
// auth when both client and signature are present, simple key otherwise.
func AuthFromCredentials(key, client, signature string) Auth {
	if client != "" && signature != "" {
		return BusinessAuth{Client: client, Signature: signature}
	}
	return SimpleKey{Key: key}
}
