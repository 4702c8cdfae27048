// Package api serves the movie catalog over HTTP with chi.
//
//	GET    /               liveness string
//	GET    /movies         list, filtered by query parameters
//	GET    /movies/{id}    one movie or 404
//	POST   /movies         create, 201
//	PUT    /movies/{id}    partial update
//	DELETE /movies/{id}    204 or 404
//	GET    /spec           Swagger 2.0 document
//	GET    /swagger/*      Swagger UI
//	GET    /metrics        Prometheus exposition
package api
