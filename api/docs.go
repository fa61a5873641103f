// Package api holds the OpenAPI document served at /docs.
//
// It follows the layout swag writes and is kept in sync with the handler
// annotations by hand.
package api

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
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing the service endpoints and the projection endpoints of the current version",
                "tags": ["General"],
                "summary": "API root",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/root.Response"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health. The engine holds no connections, so a running server is healthy.",
                "tags": ["General"],
                "summary": "Get health",
                "responses": {"204": {"description": "No Content"}}
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API and the projection horizon it is configured with",
                "tags": ["General"],
                "summary": "API version",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/version.Response"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "tags": ["v1"],
                "summary": "v1 API",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.Response"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["v1"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/timelines": {
            "post": {
                "description": "Projects the daily balance from the first day of the balance month on.\nDays before the balance date have an unknown balance.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Timelines"],
                "summary": "Project the balance",
                "parameters": [
                    {"description": "Profile, history and purchase", "name": "timeline", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.TimelineEditable"}},
                    {"type": "integer", "description": "Days projected after the balance date. Defaults to the configured horizon.", "name": "days", "in": "query"},
                    {"type": "number", "description": "Balances below this are marked as warning", "name": "warningBelow", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.TimelineResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            }
        },
        "/v1/analyses": {
            "post": {
                "description": "Classifies a purchase as green, orange or red and returns the reasons, tips and projected figures",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Analyses"],
                "summary": "Analyze a purchase",
                "parameters": [
                    {"description": "Purchase and profile or snapshot", "name": "analysis", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.AnalysisEditable"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.AnalysisResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            }
        },
        "/v1/goal-simulations": {
            "post": {
                "description": "Checks whether a savings goal can be reached by its deadline and suggests a later deadline if not",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Goals"],
                "summary": "Simulate a goal",
                "parameters": [
                    {"description": "Profile and goals", "name": "simulation", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.GoalSimulationEditable"}},
                    {"type": "string", "description": "ID of the goal in the goals list to simulate", "name": "goal", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.GoalSimulationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            }
        },
        "/v1/snapshots": {
            "post": {
                "description": "Computes the monthly figures and ratios a purchase is judged against",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Snapshots"],
                "summary": "Derive a budget snapshot",
                "parameters": [
                    {"description": "Profile", "name": "snapshot", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.SnapshotCreate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.SnapshotResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "models.DayEvent": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Rent"},
                "type": {"type": "string", "enum": ["income", "expense"], "example": "expense"},
                "amount": {"type": "number", "example": -800},
                "origin": {"type": "string", "enum": ["recurring", "history", "simulation"], "example": "recurring"},
                "applied": {"description": "false for scheduled income on the anchor day and everything before it", "type": "boolean", "example": true}
            }
        },
        "models.DailyRecord": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2026-10-05"},
                "balance": {"description": "Whole currency units, null before the balance date", "type": "integer", "x-nullable": true, "example": 1240},
                "events": {"type": "array", "items": {"$ref": "#/definitions/models.DayEvent"}},
                "variableSpending": {"description": "Smoothed variable spending debited this day", "type": "number", "example": 13.33},
                "status": {"type": "string", "enum": ["safe", "warning", "danger"], "example": "safe"}
            }
        },
        "models.MonthBucket": {
            "type": "object",
            "properties": {
                "month": {"type": "string", "example": "2026-10"},
                "label": {"type": "string", "example": "October 2026"},
                "days": {"type": "array", "items": {"$ref": "#/definitions/models.DailyRecord"}},
                "balanceEnd": {"description": "Last known balance of the month", "type": "number", "x-nullable": true, "example": 1240},
                "income": {"description": "Sum of applied incoming events", "type": "number", "example": 2000},
                "expenses": {"description": "Sum of applied outgoing events and variable spending", "type": "number", "example": -1350.5}
            }
        },
        "models.PersonaRules": {
            "type": "object",
            "properties": {
                "minLivingRemainder": {"description": "Minimum discretionary money left each month", "type": "number", "example": 200},
                "targetSafetyMonths": {"description": "Months of mandatory expenses the reserve should cover", "type": "number", "example": 3},
                "maxDebtRatio": {"description": "Maximum engagement rate in percent", "type": "number", "example": 35}
            }
        },
        "models.Snapshot": {
            "type": "object",
            "properties": {
                "monthlyIncome": {"type": "number", "example": 2000},
                "mandatoryExpenses": {"description": "Fixed costs, subscriptions and credits", "type": "number", "example": 950},
                "remainder": {"description": "Discretionary money left each month", "type": "number", "example": 450},
                "reserve": {"description": "Savings available for cash purchases", "type": "number", "example": 4000},
                "capacityToSave": {"description": "Income minus recurring commitments", "type": "number", "example": 750},
                "safetyMonths": {"description": "Reserve divided by mandatory expenses", "type": "number", "example": 4.2},
                "engagementRate": {"description": "Mandatory expenses in percent of income", "type": "number", "example": 47.5},
                "persona": {"type": "string", "enum": ["student", "employee", "freelancer", "family", "retired"], "example": "employee"},
                "rules": {"$ref": "#/definitions/models.PersonaRules"},
                "locale": {"description": "Locale used to format amounts in messages", "type": "string", "example": "fr-FR"}
            }
        },
        "models.Issue": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "enum": ["insufficient_funds", "projected_overdraft", "lifestyle", "double_alert", "low_safety_net", "high_debt_ratio"], "example": "lifestyle"},
                "level": {"type": "string", "enum": ["green", "orange", "red"], "example": "orange"},
                "message": {"type": "string", "example": "Only 120 € would be left to live on this month"}
            }
        },
        "models.CurvePoint": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2026-10-21"},
                "balance": {"type": "number", "example": 830}
            }
        },
        "models.Metrics": {
            "type": "object",
            "properties": {
                "realCost": {"description": "Money that actually leaves the household", "type": "number", "example": 1254},
                "newReserve": {"description": "Reserve after the purchase, never negative", "type": "number", "example": 4000},
                "newRemainder": {"description": "Monthly remainder after the purchase", "type": "number", "example": 345.5},
                "newSafetyMonths": {"description": "Capped at 99", "type": "number", "example": 3.8},
                "newEngagementRate": {"description": "In percent of income", "type": "number", "example": 52.7},
                "monthlyCost": {"description": "New recurring monthly cost", "type": "number", "example": 104.5},
                "opportunityCost": {"description": "Investment growth forgone", "type": "number", "example": 788.6},
                "creditCost": {"description": "Interest paid", "type": "number", "example": 54},
                "workDays": {"description": "Days of work the cost represents", "type": "number", "example": 13.2},
                "lowestBalance": {"description": "Lowest projected balance over the next 45 days", "type": "number", "x-nullable": true, "example": -120},
                "firstOverdraft": {"description": "First day the balance is projected below zero", "type": "string", "x-nullable": true, "example": "2026-11-02"},
                "projectedCurve": {"type": "array", "items": {"$ref": "#/definitions/models.CurvePoint"}}
            }
        },
        "models.AnalysisResult": {
            "type": "object",
            "properties": {
                "verdict": {"type": "string", "enum": ["green", "orange", "red"], "example": "orange"},
                "score": {"description": "0 to 100", "type": "integer", "example": 60},
                "period": {"type": "string", "enum": ["past", "current", "future"], "example": "current"},
                "message": {"type": "string", "example": "Affordable, but your monthly margin shrinks"},
                "issues": {"type": "array", "items": {"$ref": "#/definitions/models.Issue"}},
                "tips": {"type": "array", "items": {"type": "string"}},
                "metrics": {"$ref": "#/definitions/models.Metrics"}
            }
        },
        "models.Suggestion": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["extend_time", "impossible"], "example": "extend_time"},
                "message": {"type": "string", "example": "Reachable in 80 months by saving 50 per month"},
                "neededMonths": {"type": "integer", "example": 80},
                "newDeadline": {"type": "string", "example": "2033-06-18T00:00:00Z"},
                "newMonthlyEffort": {"type": "number", "example": 50}
            }
        },
        "models.GoalSimulation": {
            "type": "object",
            "properties": {
                "amountToSave": {"type": "number", "example": 3750},
                "months": {"type": "integer", "example": 12},
                "requiredMonthlyEffort": {"type": "number", "example": 312.5},
                "remainingCapacity": {"description": "Capacity to save not committed to other goals", "type": "number", "example": 50},
                "isPossible": {"type": "boolean", "example": false},
                "suggestion": {"$ref": "#/definitions/models.Suggestion"},
                "projectedAmount": {"description": "Saved amount at the deadline with the current contribution and yield", "type": "number", "example": 2100},
                "onTrack": {"description": "The current contribution reaches the target in time", "type": "boolean", "example": false}
            }
        },
        "httperrors.HTTPError": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "the request body must not be empty"}}
        },
        "root.Response": {
            "type": "object",
            "properties": {"links": {"$ref": "#/definitions/root.Links"}}
        },
        "root.Links": {
            "type": "object",
            "properties": {
                "analyses": {"type": "string", "example": "https://example.com/api/v1/analyses"},
                "docs": {"type": "string", "example": "https://example.com/api/docs/index.html"},
                "goalSimulations": {"type": "string", "example": "https://example.com/api/v1/goal-simulations"},
                "healthz": {"type": "string", "example": "https://example.com/api/healthz"},
                "metrics": {"type": "string", "example": "https://example.com/api/metrics"},
                "timelines": {"type": "string", "example": "https://example.com/api/v1/timelines"},
                "v1": {"type": "string", "example": "https://example.com/api/v1"},
                "version": {"type": "string", "example": "https://example.com/api/version"}
            }
        },
        "version.Response": {
            "type": "object",
            "properties": {"data": {"type": "object", "properties": {"version": {"type": "string", "example": "1.1.0"}, "horizon": {"type": "integer", "example": 365}}}}
        },
        "v1.Response": {
            "type": "object",
            "properties": {
                "links": {
                    "type": "object",
                    "properties": {
                        "analyses": {"type": "string", "example": "https://example.com/api/v1/analyses"},
                        "goalSimulations": {"type": "string", "example": "https://example.com/api/v1/goal-simulations"},
                        "snapshots": {"type": "string", "example": "https://example.com/api/v1/snapshots"},
                        "timelines": {"type": "string", "example": "https://example.com/api/v1/timelines"}
                    }
                }
            }
        },
        "v1.RecurringItemEditable": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Rent"},
                "amount": {"type": "number", "example": 800},
                "dayOfMonth": {"type": "integer", "example": 5}
            }
        },
        "v1.ProfileEditable": {
            "type": "object",
            "properties": {
                "balance": {"type": "number", "example": 1520.35},
                "balanceDate": {"type": "string", "example": "2026-10-10"},
                "updatedAt": {"type": "string", "example": "2026-10-10"},
                "savings": {"type": "number", "example": 4000},
                "incomes": {"type": "array", "items": {"$ref": "#/definitions/v1.RecurringItemEditable"}},
                "fixedCosts": {"type": "array", "items": {"$ref": "#/definitions/v1.RecurringItemEditable"}},
                "subscriptions": {"type": "array", "items": {"$ref": "#/definitions/v1.RecurringItemEditable"}},
                "credits": {"type": "array", "items": {"$ref": "#/definitions/v1.RecurringItemEditable"}},
                "savingsContributions": {"type": "array", "items": {"$ref": "#/definitions/v1.RecurringItemEditable"}},
                "variableBudget": {"type": "number", "example": 300},
                "persona": {"type": "string", "example": "employee"},
                "locale": {"type": "string", "example": "fr-FR"}
            }
        },
        "v1.PurchaseEditable": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "New laptop"},
                "amount": {"type": "number", "example": 1200},
                "mode": {"type": "string", "example": "CREDIT"},
                "reimbursable": {"type": "boolean", "example": false},
                "professional": {"type": "boolean", "example": false},
                "duration": {"type": "integer", "example": 12},
                "rate": {"type": "number", "example": 4.5},
                "date": {"type": "string", "example": "2026-10-20"}
            }
        },
        "v1.HistoryEntryEditable": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "65392deb-5e92-4268-b114-297faad6cdce"},
                "purchase": {"$ref": "#/definitions/v1.PurchaseEditable"},
                "date": {"type": "string", "example": "2026-09-14"}
            }
        },
        "v1.GoalEditable": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "f81566d9-af4d-4f13-9830-c62c4b5e4c7e"},
                "name": {"type": "string", "example": "New TV"},
                "target": {"type": "number", "example": 4000},
                "saved": {"type": "number", "example": 250},
                "deadline": {"type": "string", "example": "2027-10-01"},
                "monthlyContribution": {"type": "number", "example": 150},
                "projectedYield": {"type": "number", "example": 2.5}
            }
        },
        "v1.SnapshotEditable": {
            "type": "object",
            "properties": {
                "monthlyIncome": {"type": "number", "example": 2000},
                "mandatoryExpenses": {"type": "number", "example": 950},
                "remainder": {"type": "number", "example": 450},
                "reserve": {"type": "number", "example": 4000},
                "capacityToSave": {"type": "number", "example": 750},
                "persona": {"type": "string", "example": "employee"},
                "locale": {"type": "string", "example": "fr-FR"}
            }
        },
        "v1.TimelineEditable": {
            "type": "object",
            "properties": {
                "profile": {"$ref": "#/definitions/v1.ProfileEditable"},
                "history": {"type": "array", "items": {"$ref": "#/definitions/v1.HistoryEntryEditable"}},
                "purchase": {"$ref": "#/definitions/v1.PurchaseEditable"}
            }
        },
        "v1.AnalysisEditable": {
            "type": "object",
            "properties": {
                "profile": {"$ref": "#/definitions/v1.ProfileEditable"},
                "history": {"type": "array", "items": {"$ref": "#/definitions/v1.HistoryEntryEditable"}},
                "purchase": {"$ref": "#/definitions/v1.PurchaseEditable"},
                "snapshot": {"$ref": "#/definitions/v1.SnapshotEditable"}
            }
        },
        "v1.GoalSimulationEditable": {
            "type": "object",
            "properties": {
                "profile": {"$ref": "#/definitions/v1.ProfileEditable"},
                "goals": {"type": "array", "items": {"$ref": "#/definitions/v1.GoalEditable"}},
                "goal": {"$ref": "#/definitions/v1.GoalEditable"}
            }
        },
        "v1.SnapshotCreate": {
            "type": "object",
            "properties": {"profile": {"$ref": "#/definitions/v1.ProfileEditable"}}
        },
        "v1.TimelineResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.MonthBucket"}},
                "error": {"type": "string", "example": "the request body must not be empty"}
            }
        },
        "v1.AnalysisResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/models.AnalysisResult"},
                "error": {"type": "string", "example": "the request body must not be empty"}
            }
        },
        "v1.GoalSimulationResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/models.GoalSimulation"},
                "error": {"type": "string", "example": "the request body must not be empty"}
            }
        },
        "v1.SnapshotResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/models.Snapshot"},
                "error": {"type": "string", "example": "the request body must not be empty"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
