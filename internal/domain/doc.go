// Package domain contains the core entity of the user directory, the User,
// together with the error taxonomy shared by the store, service and API
// layers. It is independent of any storage engine or transport.
package domain
