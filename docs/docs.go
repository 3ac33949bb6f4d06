// Package docs holds the OpenAPI document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/admin/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Admin login",
                "responses": {
                    "200": {"description": "Token issued"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health probe",
                "responses": {
                    "200": {"description": "Server is running"}
                }
            }
        },
        "/news": {
            "get": {
                "produces": ["application/json"],
                "tags": ["news"],
                "summary": "List news",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["news"],
                "summary": "Create news",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation failed"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/news/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["news"],
                "summary": "Get news by ID",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "News not found"}
                }
            },
            "put": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["news"],
                "summary": "Update news",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "News not found"}
                }
            },
            "delete": {
                "tags": ["news"],
                "summary": "Delete news",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "News not found"}
                }
            }
        },
        "/team": {
            "get": {
                "produces": ["application/json"],
                "tags": ["team"],
                "summary": "List team members",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["team"],
                "summary": "Create team member",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation failed"}
                }
            }
        },
        "/team/available-heads": {
            "get": {
                "produces": ["application/json"],
                "tags": ["team"],
                "summary": "List available profburo heads",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/team/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["team"],
                "summary": "Get team member by ID",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Team member not found"}
                }
            },
            "put": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["team"],
                "summary": "Update team member",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Team member not found"}
                }
            },
            "delete": {
                "tags": ["team"],
                "summary": "Delete team member",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "409": {"description": "Member heads a faculty union"}
                }
            }
        },
        "/prof": {
            "get": {
                "produces": ["application/json"],
                "tags": ["prof"],
                "summary": "List faculty unions",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["prof"],
                "summary": "Create faculty union",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Head not eligible or already assigned"}
                }
            }
        },
        "/prof/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["prof"],
                "summary": "Get faculty union by ID",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Faculty union not found"}
                }
            },
            "put": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["prof"],
                "summary": "Update faculty union",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Faculty union not found"},
                    "409": {"description": "Head not eligible or already assigned"}
                }
            },
            "delete": {
                "tags": ["prof"],
                "summary": "Delete faculty union",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Faculty union not found"}
                }
            }
        },
        "/unit": {
            "get": {
                "produces": ["application/json"],
                "tags": ["unit"],
                "summary": "List units",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["unit"],
                "summary": "Create unit",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation failed"}
                }
            }
        },
        "/unit/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["unit"],
                "summary": "Get unit by ID",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Unit not found"}
                }
            },
            "put": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["unit"],
                "summary": "Update unit",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Unit not found"}
                }
            },
            "delete": {
                "tags": ["unit"],
                "summary": "Delete unit",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Unit not found"}
                }
            }
        },
        "/uploads": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["uploads"],
                "summary": "Upload a file",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Stored"},
                    "400": {"description": "Missing or invalid file"}
                }
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
	Host:             "localhost:5068",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Profkom Lviv API",
	Description:      "Backend API for the student union website of Lviv Polytechnic: news, team directory, faculty unions and organizational units.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
