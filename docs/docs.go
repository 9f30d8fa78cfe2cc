// Package docs đăng ký tài liệu swagger cho hotelops.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "security": [{"BearerAuth": []}],
    "paths": {
        "/frontdesk/rooms": {
            "get": {
                "tags": ["frontdesk"],
                "summary": "Lưới trạng thái phòng trong ngày",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Ngày (YYYY-MM-DD)", "name": "date", "in": "query"},
                    {"type": "string", "description": "vacant | occupied | reserved | blocked | due_out", "name": "status", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/rooms": {
            "get": {
                "tags": ["rooms"],
                "summary": "Danh sách phòng",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "tags": ["rooms"],
                "summary": "Tạo phòng",
                "consumes": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/rooms/{name}/status": {
            "get": {
                "tags": ["rooms"],
                "summary": "Hồ sơ vận hành và trạng thái hiển thị của một phòng",
                "parameters": [
                    {"type": "string", "name": "name", "in": "path", "required": true},
                    {"type": "string", "name": "date", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/housekeeping/{name}/clean": {
            "post": {
                "tags": ["housekeeping"],
                "summary": "Đánh dấu phòng đã dọn",
                "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/housekeeping/{name}/dirty": {
            "post": {
                "tags": ["housekeeping"],
                "summary": "Đánh dấu phòng cần dọn",
                "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/housekeeping/{name}/inspect": {
            "post": {
                "tags": ["housekeeping"],
                "summary": "Đánh dấu phòng đã kiểm tra",
                "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/maintenance/{name}/start": {
            "post": {
                "tags": ["maintenance"],
                "summary": "Khóa phòng để bảo trì",
                "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/maintenance/{name}/complete": {
            "post": {
                "tags": ["maintenance"],
                "summary": "Hoàn tất bảo trì",
                "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/bookings": {
            "get": {
                "tags": ["bookings"],
                "summary": "Danh sách booking",
                "parameters": [
                    {"type": "string", "name": "from", "in": "query"},
                    {"type": "string", "name": "to", "in": "query"},
                    {"type": "string", "name": "room", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "tags": ["bookings"],
                "summary": "Tạo booking hoặc khóa phòng bảo trì",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/bookings/search": {
            "get": {
                "tags": ["bookings"],
                "summary": "Tìm booking theo tên khách, số điện thoại hoặc mã đặt phòng",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query", "required": true},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/bookings/{id}": {
            "get": {
                "tags": ["bookings"],
                "summary": "Chi tiết booking",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/bookings/{id}/status": {
            "put": {
                "tags": ["bookings"],
                "summary": "Chuyển trạng thái booking",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/ledger": {
            "get": {
                "tags": ["ledger"],
                "summary": "Bút toán thu chi trong khoảng ngày",
                "parameters": [
                    {"type": "string", "name": "from", "in": "query"},
                    {"type": "string", "name": "to", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "tags": ["ledger"],
                "summary": "Ghi bút toán",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/reports/daily": {
            "get": {
                "tags": ["reports"],
                "summary": "Báo cáo vận hành trong ngày",
                "parameters": [{"type": "string", "name": "date", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/reports/range": {
            "get": {
                "tags": ["reports"],
                "summary": "Tổng hợp các lần night audit trong khoảng ngày",
                "parameters": [
                    {"type": "string", "name": "from", "in": "query", "required": true},
                    {"type": "string", "name": "to", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/night-audit": {
            "post": {
                "tags": ["reports"],
                "summary": "Chạy night audit thủ công",
                "parameters": [{"name": "body", "in": "body", "schema": {"type": "object"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        }
    },
    "definitions": {
        "response.Pagination": {
            "type": "object",
            "properties": {
                "limit": {"type": "integer"},
                "page": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {},
                "mess": {"type": "string"},
                "pagination": {"$ref": "#/definitions/response.Pagination"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "hotelops API",
	Description:      "Trạng thái phòng cho lễ tân, dọn phòng, booking, sổ cái và night audit.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
