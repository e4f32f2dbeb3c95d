// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-user-auth HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into JSON
// response bodies. API clients match on some of them, so their wording is
// part of the contract.
package app

// Registration.
const (
	// MsgRegistrationFieldsRequired is returned when email, password or name
	// is missing from a registration request.
	MsgRegistrationFieldsRequired = "Email, password, and name are required"

	// MsgPasswordTooLong is returned when the password exceeds what bcrypt hashes.
	MsgPasswordTooLong = "Password must be at most 72 bytes"

	// MsgUserAlreadyExists is returned when the email is already registered.
	MsgUserAlreadyExists = "User already exists"

	MsgUserRegistered = "User registered successfully"
)

// Login.
const (
	// MsgLoginFieldsRequired is returned when email or password is missing.
	MsgLoginFieldsRequired = "Email and password are required"

	// MsgInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	MsgInvalidCredentials = "Invalid credentials"

	MsgLoginSuccessful = "Login successful"
)

// Token verification and protected routes.
const (
	MsgTokenRequired = "Token is required"
	MsgInvalidToken  = "Invalid token"

	// MsgAccessTokenRequired is returned by the auth middleware when the
	// request carries no bearer token.
	MsgAccessTokenRequired = "Access token required"

	// MsgInvalidOrExpiredToken is returned by the auth middleware when the
	// bearer token cannot be verified.
	MsgInvalidOrExpiredToken = "Invalid or expired token"
)

// User directory.
const (
	MsgUserNotFound = "User not found"
	MsgUserUpdated  = "User updated successfully"
	MsgUserDeleted  = "User deleted successfully"

	// MsgInvalidEmail is returned when a profile update carries a malformed
	// email address.
	MsgInvalidEmail = "Invalid email"
)

// Generic.
const (
	MsgNotFound = "Not Found"

	// MsgRouteNotFound is formatted with the request URI.
	MsgRouteNotFound = "Route %s not found"

	MsgInvalidJSON         = "Invalid JSON body"
	MsgPayloadTooLarge     = "Payload Too Large"
	MsgInternalServerError = "Internal Server Error"
)
