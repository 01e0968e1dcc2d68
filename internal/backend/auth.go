package backend

import "context"

type LoginResult struct {
	Token    string `json:"token"`
	UserType string `json:"userType"`
}

// Login exchanges credentials for a bearer token and establishes the
// session with it.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	var result LoginResult
	if err := c.post(ctx, "auth", "/auth/login", body, &result); err != nil {
		return LoginResult{}, err
	}

	c.session.Establish(result.Token)
	if result.UserType == "" {
		result.UserType = c.session.Role()
	}
	return result, nil
}

// Logout drops the session credential. Purely local; the backend holds no
// server-side session state.
func (c *Client) Logout() {
	c.session.Clear()
}
