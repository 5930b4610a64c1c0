// Package docs holds the swagger document served under /swagger/*.
// Keep it in sync with the godoc annotations of the controllers (swag init -g cmd/skydry-api/main.go).
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Report the status of the database, cache and queue components",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Application health",
                "responses": {
                    "200": {"description": "All components up or not configured", "schema": {"$ref": "#/definitions/model.HealthResponse"}},
                    "503": {"description": "At least one component down", "schema": {"$ref": "#/definitions/model.HealthResponse"}}
                }
            }
        },
        "/forecast": {
            "get": {
                "description": "Five-day drying forecast for the profile. Query values override the stored settings for this request.",
                "produces": ["application/json"],
                "tags": ["forecast"],
                "summary": "Drying forecast",
                "parameters": [
                    {"type": "string", "description": "Profile id", "name": "X-Profile-ID", "in": "header"},
                    {"type": "number", "description": "Latitude", "name": "lat", "in": "query"},
                    {"type": "number", "description": "Longitude", "name": "lon", "in": "query"},
                    {"type": "string", "description": "Work window start (HH:MM)", "name": "workStart", "in": "query"},
                    {"type": "string", "description": "Work window end (HH:MM)", "name": "workEnd", "in": "query"},
                    {"type": "number", "description": "0 favours safety, 1 favours speed", "name": "preference", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Forecast per day", "schema": {"$ref": "#/definitions/model.ForecastResponse"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/error"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/forecast/report": {
            "get": {
                "description": "Forecast summary ready to copy or share",
                "produces": ["text/plain"],
                "tags": ["forecast"],
                "summary": "Plain-text forecast report",
                "parameters": [
                    {"type": "string", "description": "Profile id", "name": "X-Profile-ID", "in": "header"},
                    {"type": "number", "description": "Latitude", "name": "lat", "in": "query"},
                    {"type": "number", "description": "Longitude", "name": "lon", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Report", "schema": {"type": "string"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/error"}},
                    "404": {"description": "No forecast data to export", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/forecast/history": {
            "get": {
                "description": "Daily summaries recorded for the profile, oldest first",
                "produces": ["application/json"],
                "tags": ["forecast"],
                "summary": "Stored forecast history",
                "parameters": [
                    {"type": "string", "description": "Profile id", "name": "X-Profile-ID", "in": "header"},
                    {"type": "string", "description": "Date to filter from (YYYY-MM-DD)", "name": "fromDate", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Stored summaries", "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.ForecastRecord"}}},
                    "400": {"description": "Invalid date", "schema": {"$ref": "#/definitions/error"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/forecast/refresh": {
            "post": {
                "description": "Send one refresh message per profile to the refresh queue",
                "produces": ["application/json"],
                "tags": ["forecast"],
                "summary": "Enqueue refresh of every profile",
                "responses": {
                    "202": {"description": "Request id", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Refresh queue not configured", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/settings/preferences": {
            "get": {
                "description": "Stored work window and drying bias of the profile, or the defaults",
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Get preferences",
                "parameters": [{"type": "string", "description": "Profile id", "name": "X-Profile-ID", "in": "header"}],
                "responses": {
                    "200": {"description": "Preferences", "schema": {"$ref": "#/definitions/model.PreferencesResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/error"}}
                }
            },
            "put": {
                "description": "Update the work window and drying bias. Omitted fields keep their stored value.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Save preferences",
                "parameters": [
                    {"type": "string", "description": "Profile id", "name": "X-Profile-ID", "in": "header"},
                    {"description": "Preferences", "name": "preferences", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.PreferencesRequest"}}
                ],
                "responses": {
                    "200": {"description": "Saved preferences", "schema": {"$ref": "#/definitions/model.PreferencesResponse"}},
                    "400": {"description": "Invalid preferences", "schema": {"$ref": "#/definitions/error"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/error"}}
                }
            },
            "delete": {
                "description": "Restore the default work window and drying bias",
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Reset preferences",
                "parameters": [{"type": "string", "description": "Profile id", "name": "X-Profile-ID", "in": "header"}],
                "responses": {
                    "200": {"description": "Default preferences", "schema": {"$ref": "#/definitions/model.PreferencesResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/settings/location": {
            "get": {
                "description": "Stored location of the profile, or the default location",
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Get location",
                "parameters": [{"type": "string", "description": "Profile id", "name": "X-Profile-ID", "in": "header"}],
                "responses": {
                    "200": {"description": "Location", "schema": {"$ref": "#/definitions/entity.Location"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/error"}}
                }
            },
            "put": {
                "description": "Reverse geocode the coordinates and store them. Without coordinates the default location is returned and nothing is stored.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Resolve and save location",
                "parameters": [
                    {"type": "string", "description": "Profile id", "name": "X-Profile-ID", "in": "header"},
                    {"description": "Coordinates", "name": "location", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.LocationRequest"}}
                ],
                "responses": {
                    "200": {"description": "Resolved location", "schema": {"$ref": "#/definitions/entity.Location"}},
                    "400": {"description": "Invalid coordinates", "schema": {"$ref": "#/definitions/error"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        }
    },
    "definitions": {
        "error": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "entity.Location": {
            "type": "object",
            "properties": {
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "address": {"type": "string"},
                "isDefault": {"type": "boolean"}
            }
        },
        "entity.HourlySample": {
            "type": "object",
            "properties": {
                "time": {"type": "string"},
                "temperature": {"type": "number"},
                "humidity": {"type": "number"},
                "windSpeed": {"type": "number"},
                "cloudCover": {"type": "number"},
                "precipitation": {"type": "number"},
                "vpd": {"type": "number"},
                "precipitationProbability": {"type": "number"}
            }
        },
        "entity.DayForecast": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "maxTemp": {"type": "number"},
                "minTemp": {"type": "number"},
                "avgTemp": {"type": "number"},
                "avgHumidity": {"type": "number"},
                "avgWind": {"type": "number"},
                "avgCloud": {"type": "number"},
                "avgVpd": {"type": "number"},
                "maxRainProb": {"type": "number"},
                "totalPrecipitation": {"type": "number"},
                "dryingIndex": {"type": "number"},
                "recommendation": {"type": "string"},
                "color": {"type": "string", "enum": ["red", "orange", "green"]},
                "rainAlert": {"type": "boolean"},
                "hourlyData": {"type": "array", "items": {"$ref": "#/definitions/entity.HourlySample"}},
                "workHoursData": {"type": "array", "items": {"$ref": "#/definitions/entity.HourlySample"}},
                "display": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "entity.ForecastRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "profileId": {"type": "string"},
                "day": {"type": "string"},
                "dryingIndex": {"type": "number"},
                "recommendation": {"type": "string"},
                "color": {"type": "string"},
                "rainAlert": {"type": "boolean"},
                "minTemp": {"type": "number"},
                "maxTemp": {"type": "number"},
                "avgHumidity": {"type": "number"},
                "maxRainProb": {"type": "number"},
                "source": {"type": "string", "enum": ["live", "mock"]},
                "createdDate": {"type": "string"},
                "updatedDate": {"type": "string"}
            }
        },
        "model.ForecastResponse": {
            "type": "object",
            "properties": {
                "location": {"$ref": "#/definitions/entity.Location"},
                "preferences": {"$ref": "#/definitions/model.PreferencesRequest"},
                "preferenceMode": {"type": "string"},
                "source": {"type": "string", "enum": ["live", "mock"]},
                "timezone": {"type": "string"},
                "today": {"type": "string"},
                "forecasts": {"type": "array", "items": {"$ref": "#/definitions/entity.DayForecast"}}
            }
        },
        "model.PreferencesRequest": {
            "type": "object",
            "properties": {
                "workStart": {"type": "string", "example": "08:00"},
                "workEnd": {"type": "string", "example": "19:00"},
                "preference": {"type": "number", "example": 0.5}
            }
        },
        "model.PreferencesResponse": {
            "type": "object",
            "properties": {
                "workStart": {"type": "string"},
                "workEnd": {"type": "string"},
                "preference": {"type": "number"},
                "mode": {"type": "string"}
            }
        },
        "model.LocationRequest": {
            "type": "object",
            "properties": {
                "lat": {"type": "number", "example": 22.5431},
                "lon": {"type": "number", "example": 114.0579}
            }
        },
        "model.ComponentHealthStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["UP", "DOWN", "UNKNOWN"]},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["UP", "DOWN", "UNKNOWN"]},
                "database": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "cache": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "queue": {"$ref": "#/definitions/model.ComponentHealthStatus"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/skydry",
	Schemes:          []string{},
	Title:            "SkyDry API",
	Description:      "Clothes drying forecast: five-day drying index, recommendations and user preferences.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
