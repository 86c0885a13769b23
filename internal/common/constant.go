// Package common contains shared constants and sentinel errors used across
// hotelbook components.
package common

// AuthCookieName is the cookie that carries the signed access token between
// the browser (or CLI cookie jar) and the API.
const AuthCookieName = "auth_token"
