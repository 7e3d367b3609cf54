// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/allocations": {
            "post": {
                "responses": {
                    "201": {
                        "description": "Successfully created allocation",
                        "schema": {
                            "$ref": "#/definitions/service.AllocationResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Project or team member not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Member would be overallocated",
                        "schema": {
                            "$ref": "#/definitions/handlers.ConflictResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Allocate a team member to a project",
                "description": "Store an allocation of hours over an inclusive date window. Rejected with 409 and the conflicting days when the member would be overallocated.",
                "tags": [
                    "allocations"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Allocation data",
                        "name": "allocation",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.CreateAllocationRequest"
                        }
                    }
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "Allocations",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/service.AllocationResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "List allocations",
                "description": "List allocations ordered by start date, optionally filtered by project, member and overlapping window",
                "tags": [
                    "allocations"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Project ID (UUID)",
                        "name": "project_id",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Team member ID (UUID)",
                        "name": "team_member_id",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Window start (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Window end (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query",
                        "type": "string"
                    }
                ]
            }
        },
        "/allocations/{id}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Successfully retrieved allocation",
                        "schema": {
                            "$ref": "#/definitions/service.AllocationResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid allocation ID",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Allocation not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Get allocation by ID",
                "tags": [
                    "allocations"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Allocation ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "put": {
                "responses": {
                    "200": {
                        "description": "Successfully updated allocation",
                        "schema": {
                            "$ref": "#/definitions/service.AllocationResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Allocation, project or team member not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Member would be overallocated",
                        "schema": {
                            "$ref": "#/definitions/handlers.ConflictResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Update allocation",
                "description": "Update the provided fields. The allocation's previous hours do not count against the new ones.",
                "tags": [
                    "allocations"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Allocation ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Fields to update",
                        "name": "allocation",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.UpdateAllocationRequest"
                        }
                    }
                ]
            },
            "delete": {
                "responses": {
                    "204": {
                        "description": "Allocation deleted"
                    },
                    "400": {
                        "description": "Invalid allocation ID",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Allocation not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Delete allocation",
                "tags": [
                    "allocations"
                ],
                "parameters": [
                    {
                        "description": "Allocation ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/allocations/{id}/actual-hours": {
            "patch": {
                "responses": {
                    "200": {
                        "description": "Updated allocation",
                        "schema": {
                            "$ref": "#/definitions/service.AllocationResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Allocation not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Log actual hours",
                "description": "Record the hours actually worked against an allocation",
                "tags": [
                    "allocations"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Allocation ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Actual hours",
                        "name": "actual",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.LogActualHoursRequest"
                        }
                    }
                ]
            }
        },
        "/conflicts/check": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Conflicting days, if any",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Team member not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Check a proposed allocation",
                "description": "Run conflict detection for a proposal without storing it. An empty list means it would be accepted.",
                "tags": [
                    "conflicts"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Proposed allocation",
                        "name": "proposal",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.CheckConflictsRequest"
                        }
                    }
                ]
            }
        },
        "/conflicts": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Conflicting days",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/scheduling.ResourceConflict"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Team member not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "List stored conflicts",
                "description": "Report days on which stored allocations exceed availability",
                "tags": [
                    "conflicts"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Window start (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Window end (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Limit to one team member (UUID)",
                        "name": "team_member_id",
                        "in": "query",
                        "type": "string"
                    }
                ]
            }
        },
        "/health": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Application is healthy",
                        "schema": {
                            "$ref": "#/definitions/handlers.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "Application is unhealthy",
                        "schema": {
                            "$ref": "#/definitions/handlers.HealthResponse"
                        }
                    }
                },
                "summary": "Health check",
                "description": "Get the overall health status of the application including database connectivity",
                "tags": [
                    "health"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/health/ready": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Application is ready",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "503": {
                        "description": "Application is not ready",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                },
                "summary": "Readiness check",
                "description": "Check if the application is ready to serve requests",
                "tags": [
                    "health"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/health/live": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Application is alive",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                },
                "summary": "Liveness check",
                "description": "Check if the application is alive and responding",
                "tags": [
                    "health"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/projects": {
            "post": {
                "responses": {
                    "201": {
                        "description": "Successfully created project",
                        "schema": {
                            "$ref": "#/definitions/service.ProjectResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Project already exists",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Create a new project",
                "description": "Create a new project that team members can be allocated to",
                "tags": [
                    "projects"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Project data",
                        "name": "project",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.CreateProjectRequest"
                        }
                    }
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "Successfully retrieved projects",
                        "schema": {
                            "$ref": "#/definitions/service.ProjectListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "List projects",
                "description": "List projects ordered by name with pagination",
                "tags": [
                    "projects"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Page number",
                        "name": "page",
                        "in": "query",
                        "type": "integer",
                        "default": 1
                    },
                    {
                        "description": "Page size",
                        "name": "page_size",
                        "in": "query",
                        "type": "integer",
                        "default": 20
                    }
                ]
            }
        },
        "/projects/{id}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Successfully retrieved project",
                        "schema": {
                            "$ref": "#/definitions/service.ProjectResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid project ID",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Project not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Get project by ID",
                "description": "Get a specific project by its UUID",
                "tags": [
                    "projects"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Project ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/projects/{id}/status": {
            "patch": {
                "responses": {
                    "200": {
                        "description": "Successfully updated project",
                        "schema": {
                            "$ref": "#/definitions/service.ProjectResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Project not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Update project status",
                "description": "Move a project to another lifecycle status",
                "tags": [
                    "projects"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Project ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "New status",
                        "name": "status",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.UpdateProjectStatusRequest"
                        }
                    }
                ]
            }
        },
        "/projects/{id}/timeline": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Successfully retrieved timeline",
                        "schema": {
                            "$ref": "#/definitions/service.TimelineResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid project ID",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Project or timeline not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Get project timeline",
                "description": "Get the phases, milestones and dependencies of a project",
                "tags": [
                    "timelines"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Project ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/timelines": {
            "post": {
                "responses": {
                    "201": {
                        "description": "Successfully stored timeline",
                        "schema": {
                            "$ref": "#/definitions/service.TimelineResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Project not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Create or replace a project timeline",
                "description": "Store a project's timeline, replacing any existing one",
                "tags": [
                    "timelines"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Timeline data",
                        "name": "timeline",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.CreateTimelineRequest"
                        }
                    }
                ]
            }
        },
        "/projects/{id}/phase-report": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Phase report",
                        "schema": {
                            "$ref": "#/definitions/service.ProjectPhaseReport"
                        }
                    },
                    "400": {
                        "description": "Invalid project ID",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Project or timeline not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Project effort by phase",
                "description": "Prorate the project's allocations into the phases of its timeline",
                "tags": [
                    "reports"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Project ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/reports/capacity": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Capacity reports",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/scheduling.CapacityReport"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Capacity report",
                "description": "Per-member capacity, allocated hours and utilization over a window, most utilized first",
                "tags": [
                    "reports"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Window start (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Window end (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/reports/workload": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Buckets",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/scheduling.WorkloadDistribution"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Workload distribution",
                "description": "Team capacity and allocation per week or month bucket",
                "tags": [
                    "reports"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Window start (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Window end (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Bucket size",
                        "name": "bucket",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "week",
                            "month"
                        ],
                        "default": "week"
                    }
                ]
            }
        },
        "/members": {
            "post": {
                "responses": {
                    "201": {
                        "description": "Successfully created team member",
                        "schema": {
                            "$ref": "#/definitions/service.TeamMemberResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Team member already exists",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Create a new team member",
                "description": "Create a team member with a weekly capacity",
                "tags": [
                    "members"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Team member data",
                        "name": "member",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.CreateTeamMemberRequest"
                        }
                    }
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "Successfully retrieved team members",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/service.TeamMemberResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "List team members",
                "description": "List team members ordered by name",
                "tags": [
                    "members"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Only active members",
                        "name": "active",
                        "in": "query",
                        "type": "boolean",
                        "default": false
                    }
                ]
            }
        },
        "/members/available": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Members with room for the hours",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/service.TeamMemberResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Find available team members",
                "description": "List active members, optionally holding a skill, who could take on the given hours over the window without a conflict",
                "tags": [
                    "members"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Required skill",
                        "name": "skill",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Window start (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Window end (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Hours to place over the window",
                        "name": "hours",
                        "in": "query",
                        "type": "number",
                        "default": 0.0
                    }
                ]
            }
        },
        "/members/{id}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Successfully retrieved team member",
                        "schema": {
                            "$ref": "#/definitions/service.TeamMemberResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid team member ID",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Team member not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Get team member by ID",
                "description": "Get a team member including the current workload",
                "tags": [
                    "members"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Team member ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "put": {
                "responses": {
                    "200": {
                        "description": "Successfully updated team member",
                        "schema": {
                            "$ref": "#/definitions/service.TeamMemberResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Team member not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Email already in use",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Update team member",
                "description": "Update the provided fields of a team member",
                "tags": [
                    "members"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Team member ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Fields to update",
                        "name": "member",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.UpdateTeamMemberRequest"
                        }
                    }
                ]
            },
            "delete": {
                "responses": {
                    "200": {
                        "description": "Team member deactivated",
                        "schema": {
                            "$ref": "#/definitions/service.TeamMemberResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid team member ID",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Team member not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Deactivate team member",
                "description": "Mark a team member inactive. Existing allocations are kept.",
                "tags": [
                    "members"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Team member ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/members/{id}/availability": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Availability overrides",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/service.AvailabilityResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Team member not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "List availability overrides",
                "description": "List a member's availability overrides in a date window",
                "tags": [
                    "availability"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Team member ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Window start (YYYY-MM-DD)",
                        "name": "from",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Window end (YYYY-MM-DD)",
                        "name": "to",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "put": {
                "responses": {
                    "200": {
                        "description": "Stored override",
                        "schema": {
                            "$ref": "#/definitions/service.AvailabilityResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Team member not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Set availability override",
                "description": "Store an availability override for one date, replacing an override of the same type",
                "tags": [
                    "availability"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Team member ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Override",
                        "name": "availability",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.SetAvailabilityRequest"
                        }
                    }
                ]
            },
            "delete": {
                "responses": {
                    "204": {
                        "description": "Override removed"
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Override not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                },
                "summary": "Remove availability override",
                "description": "Delete the override of the given type on a date",
                "tags": [
                    "availability"
                ],
                "parameters": [
                    {
                        "description": "Team member ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Date (YYYY-MM-DD)",
                        "name": "date",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Override type",
                        "name": "type",
                        "in": "query",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "available",
                            "busy",
                            "vacation",
                            "sick"
                        ]
                    }
                ]
            }
        }
    },
    "definitions": {
        "handlers.ConflictResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "conflicts": {}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string",
                    "format": "date-time"
                },
                "version": {
                    "type": "string"
                },
                "services": {
                    "type": "object",
                    "additionalProperties": true
                }
            }
        },
        "scheduling.CapacityReport": {
            "type": "object",
            "properties": {
                "team_member_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "department": {
                    "type": "string"
                },
                "capacity_hours": {
                    "type": "number"
                },
                "allocated_hours": {
                    "type": "number"
                },
                "available_hours": {
                    "type": "number"
                },
                "utilization": {
                    "type": "number"
                },
                "cost": {
                    "type": "number"
                },
                "projects": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/scheduling.ProjectBreakdown"
                    }
                }
            }
        },
        "scheduling.MemberUtilization": {
            "type": "object",
            "properties": {
                "team_member_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "capacity_hours": {
                    "type": "number"
                },
                "allocated_hours": {
                    "type": "number"
                },
                "utilization": {
                    "type": "number"
                }
            }
        },
        "scheduling.PhaseBreakdown": {
            "type": "object",
            "properties": {
                "phase_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "start_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "end_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "working_days": {
                    "type": "integer"
                },
                "allocated_hours": {
                    "type": "number"
                },
                "team_members": {
                    "type": "integer"
                }
            }
        },
        "scheduling.ProjectBreakdown": {
            "type": "object",
            "properties": {
                "project_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "project_name": {
                    "type": "string"
                },
                "hours": {
                    "type": "number"
                },
                "percentage": {
                    "type": "number"
                },
                "cost": {
                    "type": "number"
                }
            }
        },
        "scheduling.ProjectShare": {
            "type": "object",
            "properties": {
                "project_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "allocation_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "hours": {
                    "type": "number"
                },
                "proposed": {
                    "type": "boolean"
                }
            }
        },
        "scheduling.ResourceConflict": {
            "type": "object",
            "properties": {
                "team_member_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "team_member_name": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "format": "date-time"
                },
                "allocated_hours": {
                    "type": "number"
                },
                "available_hours": {
                    "type": "number"
                },
                "overallocated_by": {
                    "type": "number"
                },
                "projects": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/scheduling.ProjectShare"
                    }
                }
            }
        },
        "scheduling.WorkloadDistribution": {
            "type": "object",
            "properties": {
                "period": {
                    "type": "string"
                },
                "start_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "end_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "capacity_hours": {
                    "type": "number"
                },
                "allocated_hours": {
                    "type": "number"
                },
                "utilization": {
                    "type": "number"
                },
                "members": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/scheduling.MemberUtilization"
                    }
                }
            }
        },
        "service.AllocationResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "project_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "team_member_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "start_date": {
                    "type": "string"
                },
                "end_date": {
                    "type": "string"
                },
                "hours": {
                    "type": "number"
                },
                "working_days": {
                    "type": "integer"
                },
                "daily_hours": {
                    "type": "number"
                },
                "actual_hours": {
                    "type": "number"
                },
                "role": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "service.AvailabilityResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "team_member_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "date": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "hours": {
                    "type": "number"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "service.CheckConflictsRequest": {
            "type": "object",
            "properties": {
                "team_member_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "project_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "start_date": {
                    "type": "string"
                },
                "end_date": {
                    "type": "string"
                },
                "hours": {
                    "type": "number"
                },
                "exclude_allocation_id": {
                    "type": "string",
                    "format": "uuid"
                }
            },
            "required": [
                "team_member_id",
                "start_date",
                "end_date"
            ]
        },
        "service.CreateAllocationRequest": {
            "type": "object",
            "properties": {
                "project_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "team_member_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "start_date": {
                    "type": "string"
                },
                "end_date": {
                    "type": "string"
                },
                "hours": {
                    "type": "number"
                },
                "role": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            },
            "required": [
                "project_id",
                "team_member_id",
                "start_date",
                "end_date"
            ]
        },
        "service.CreateProjectRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            },
            "required": [
                "name",
                "title"
            ]
        },
        "service.CreateTeamMemberRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "department": {
                    "type": "string"
                },
                "hourly_rate": {
                    "type": "number"
                },
                "weekly_capacity": {
                    "type": "number"
                },
                "skills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "is_active": {
                    "type": "boolean"
                }
            },
            "required": [
                "name",
                "email",
                "skills"
            ]
        },
        "service.CreateTimelineRequest": {
            "type": "object",
            "properties": {
                "project_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "phases": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.PhaseRequest"
                    }
                },
                "milestones": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.MilestoneRequest"
                    }
                },
                "dependencies": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.DependencyRequest"
                    }
                }
            },
            "required": [
                "project_id"
            ]
        },
        "service.DependencyRequest": {
            "type": "object",
            "properties": {
                "from": {
                    "type": "string"
                },
                "to": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "lag_days": {
                    "type": "integer"
                }
            },
            "required": [
                "from",
                "to"
            ]
        },
        "service.DependencyResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "from": {
                    "type": "string"
                },
                "to": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "lag_days": {
                    "type": "integer"
                }
            }
        },
        "service.LogActualHoursRequest": {
            "type": "object",
            "properties": {
                "actual_hours": {
                    "type": "number"
                }
            }
        },
        "service.MilestoneRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "completed": {
                    "type": "boolean"
                }
            },
            "required": [
                "name",
                "date"
            ]
        },
        "service.MilestoneResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "completed": {
                    "type": "boolean"
                }
            }
        },
        "service.PhaseRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "start_date": {
                    "type": "string"
                },
                "end_date": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "progress": {
                    "type": "integer"
                }
            },
            "required": [
                "name",
                "start_date",
                "end_date"
            ]
        },
        "service.PhaseResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "start_date": {
                    "type": "string"
                },
                "end_date": {
                    "type": "string"
                },
                "working_days": {
                    "type": "integer"
                },
                "position": {
                    "type": "integer"
                },
                "status": {
                    "type": "string"
                },
                "progress": {
                    "type": "integer"
                }
            }
        },
        "service.ProjectListResponse": {
            "type": "object",
            "properties": {
                "projects": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.ProjectResponse"
                    }
                },
                "total": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                }
            }
        },
        "service.ProjectPhaseReport": {
            "type": "object",
            "properties": {
                "project_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "project_name": {
                    "type": "string"
                },
                "start_date": {
                    "type": "string"
                },
                "end_date": {
                    "type": "string"
                },
                "total_hours": {
                    "type": "number"
                },
                "phases": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/scheduling.PhaseBreakdown"
                    }
                }
            }
        },
        "service.ProjectResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "service.SetAvailabilityRequest": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "hours": {
                    "type": "number"
                },
                "notes": {
                    "type": "string"
                }
            },
            "required": [
                "date",
                "type"
            ]
        },
        "service.TeamMemberResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "department": {
                    "type": "string"
                },
                "hourly_rate": {
                    "type": "number"
                },
                "weekly_capacity": {
                    "type": "number"
                },
                "daily_capacity": {
                    "type": "number"
                },
                "skills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "is_active": {
                    "type": "boolean"
                },
                "current_workload": {
                    "type": "number"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "service.TimelineResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "project_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "start_date": {
                    "type": "string"
                },
                "end_date": {
                    "type": "string"
                },
                "phases": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.PhaseResponse"
                    }
                },
                "milestones": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.MilestoneResponse"
                    }
                },
                "dependencies": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.DependencyResponse"
                    }
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "service.UpdateAllocationRequest": {
            "type": "object",
            "properties": {
                "project_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "team_member_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "start_date": {
                    "type": "string"
                },
                "end_date": {
                    "type": "string"
                },
                "hours": {
                    "type": "number"
                },
                "role": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "service.UpdateProjectStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                }
            },
            "required": [
                "status"
            ]
        },
        "service.UpdateTeamMemberRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "department": {
                    "type": "string"
                },
                "hourly_rate": {
                    "type": "number"
                },
                "weekly_capacity": {
                    "type": "number"
                },
                "skills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "is_active": {
                    "type": "boolean"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:7010",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Resource Planner API",
	Description:      "Team capacity planning: projects, team members, allocations, conflict detection and workload reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
