// Package docs holds the OpenAPI description served at /swagger.
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
        "/auth/status": {
            "get": {
                "tags": [
                    "auth"
                ],
                "summary": "Whether a passcode locks the API",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/auth/token": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Exchange the passcode for a bearer token",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/auth/passcode": {
            "put": {
                "tags": [
                    "auth"
                ],
                "summary": "Set, replace or clear the passcode",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/habits": {
            "get": {
                "tags": [
                    "habits"
                ],
                "summary": "List habits",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "habits"
                ],
                "summary": "Create a habit",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/habits/{id}": {
            "get": {
                "tags": [
                    "habits"
                ],
                "summary": "Get a habit",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "tags": [
                    "habits"
                ],
                "summary": "Update a habit",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            },
            "delete": {
                "tags": [
                    "habits"
                ],
                "summary": "Delete a habit with its notes and reminder",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/habits/{id}/done": {
            "post": {
                "tags": [
                    "habits"
                ],
                "summary": "Mark a day done",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/habits/{id}/toggle": {
            "post": {
                "tags": [
                    "habits"
                ],
                "summary": "Toggle a day",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/habits/{id}/progress": {
            "post": {
                "tags": [
                    "habits"
                ],
                "summary": "Record progress for a day",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/notes": {
            "get": {
                "tags": [
                    "notes"
                ],
                "summary": "List notes",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "habit_id",
                        "in": "query",
                        "description": ""
                    }
                ]
            }
        },
        "/notes/{habit_id}/{date}": {
            "get": {
                "tags": [
                    "notes"
                ],
                "summary": "Get a note",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "habit_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "date",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "tags": [
                    "notes"
                ],
                "summary": "Save a note",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "habit_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "date",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            },
            "delete": {
                "tags": [
                    "notes"
                ],
                "summary": "Delete a note",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "habit_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "date",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/notes/{habit_id}/{date}/exists": {
            "get": {
                "tags": [
                    "notes"
                ],
                "summary": "Whether a note with content exists",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "habit_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "date",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/settings": {
            "get": {
                "tags": [
                    "settings"
                ],
                "summary": "Get settings",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "patch": {
                "tags": [
                    "settings"
                ],
                "summary": "Merge a partial settings update",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/settings/reset": {
            "post": {
                "tags": [
                    "settings"
                ],
                "summary": "Restore default settings",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/settings/onboarding": {
            "post": {
                "tags": [
                    "settings"
                ],
                "summary": "Complete onboarding",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/stats/overview": {
            "get": {
                "tags": [
                    "stats"
                ],
                "summary": "Dashboard summary",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/stats/streaks": {
            "get": {
                "tags": [
                    "stats"
                ],
                "summary": "Current and best streak",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "habit_id",
                        "in": "query",
                        "description": ""
                    }
                ]
            }
        },
        "/stats/completion": {
            "get": {
                "tags": [
                    "stats"
                ],
                "summary": "Completion rate",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "period",
                        "in": "query",
                        "description": ""
                    },
                    {
                        "type": "string",
                        "name": "habit_id",
                        "in": "query",
                        "description": ""
                    },
                    {
                        "type": "string",
                        "name": "start_date",
                        "in": "query",
                        "description": ""
                    },
                    {
                        "type": "string",
                        "name": "end_date",
                        "in": "query",
                        "description": ""
                    }
                ]
            }
        },
        "/stats/comparison": {
            "get": {
                "tags": [
                    "stats"
                ],
                "summary": "Period over period comparison",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "period",
                        "in": "query",
                        "description": ""
                    },
                    {
                        "type": "string",
                        "name": "habit_id",
                        "in": "query",
                        "description": ""
                    }
                ]
            }
        },
        "/stats/weekly-activity": {
            "get": {
                "tags": [
                    "stats"
                ],
                "summary": "Activity of the current week",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "habit_id",
                        "in": "query",
                        "description": ""
                    }
                ]
            }
        },
        "/stats/day": {
            "get": {
                "tags": [
                    "stats"
                ],
                "summary": "Completions on a day",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "date",
                        "in": "query",
                        "description": ""
                    }
                ]
            }
        },
        "/stats/calendar": {
            "get": {
                "tags": [
                    "stats"
                ],
                "summary": "Month calendar",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "name": "year",
                        "in": "query",
                        "description": ""
                    },
                    {
                        "type": "integer",
                        "name": "month",
                        "in": "query",
                        "description": ""
                    }
                ]
            }
        },
        "/stats/heatmap": {
            "get": {
                "tags": [
                    "stats"
                ],
                "summary": "Year heatmap",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "name": "year",
                        "in": "query",
                        "description": ""
                    }
                ]
            }
        },
        "/stats/mood": {
            "get": {
                "tags": [
                    "stats"
                ],
                "summary": "Mood trend",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "period",
                        "in": "query",
                        "description": ""
                    },
                    {
                        "type": "string",
                        "name": "habit_id",
                        "in": "query",
                        "description": ""
                    }
                ]
            }
        },
        "/stats/report": {
            "get": {
                "tags": [
                    "stats"
                ],
                "summary": "Per-habit range report",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "start_date",
                        "in": "query",
                        "description": ""
                    },
                    {
                        "type": "string",
                        "name": "end_date",
                        "in": "query",
                        "description": ""
                    }
                ]
            }
        },
        "/export": {
            "get": {
                "tags": [
                    "backup"
                ],
                "summary": "Download a backup document",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/import": {
            "post": {
                "tags": [
                    "backup"
                ],
                "summary": "Merge habits from a backup document",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "consumes": [
                    "application/json"
                ]
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Kanso Tracker API",
	Description:      "Habits, notes, settings and analytics of a single-profile habit tracker.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
