// Package movieapi holds the types shared across the movie catalog service:
// the logging, connection and retry abstractions, sentinel errors, exit
// codes and defaults. Concrete implementations live under internal/.
package movieapi
