package main

// @title Local Guide API
// @version 1.0
// @description Location-aware travel companion: place search, map view, weather panel and a conversational guide.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /

// @tag.name health
// @tag.description Service health
// @tag.name sessions
// @tag.description Shared coordinate state, chat transcript and map view
// @tag.name places
// @tag.description Geocoding
// @tag.name weather
// @tag.description Current conditions and daily outlook
// @tag.name assistant
// @tag.description Conversational guide
