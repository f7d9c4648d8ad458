// Package docs contiene el documento OpenAPI que se sirve en /swagger/*.
// Se regenera con: swag init -g cmd/api/main.go --parseInternal
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
        "/api/categorias": {
            "get": {
                "description": "Búsqueda opcional por NombreCategoria (subcadena, sin distinguir mayúsculas).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "categorias"
                ],
                "summary": "Listar categorías",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Texto a buscar",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/categories.Category"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "categorias"
                ],
                "summary": "Crear categoría",
                "parameters": [
                    {
                        "description": "Datos de la categoría",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/categories.Input"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/web.CreatedBody"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "NombreCategoria": {
                                            "type": "string"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/categorias/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "categorias"
                ],
                "summary": "Obtener categoría por ID",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la categoría",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/categories.Category"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "categorias"
                ],
                "summary": "Actualizar categoría",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la categoría",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Datos de la categoría",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/categories.Input"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "description": "Devuelve 409 si tiene registros asociados.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "categorias"
                ],
                "summary": "Eliminar categoría",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la categoría",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/citas": {
            "get": {
                "description": "Búsqueda opcional por mascota, cliente, empleado, rol o Estado (subcadena, sin distinguir mayúsculas).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "citas"
                ],
                "summary": "Listar citas",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Texto a buscar",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/appointments.Appointment"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "post": {
                "description": "Obligatorios: MascotaID y EmpleadoID. Fecha por defecto es ahora y no puede ser de un día pasado. Estado por defecto Pendiente.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "citas"
                ],
                "summary": "Crear cita",
                "parameters": [
                    {
                        "description": "Datos de la cita",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/appointments.Input"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/web.CreatedBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/citas/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "citas"
                ],
                "summary": "Obtener cita por ID",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la cita",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/appointments.Appointment"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "put": {
                "description": "Todos los campos son obligatorios. Una fecha pasada solo se acepta si es la misma ya guardada (a precisión de minuto).",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "citas"
                ],
                "summary": "Actualizar cita",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la cita",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Datos de la cita",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/appointments.Input"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "description": "Devuelve 409 si tiene registros asociados.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "citas"
                ],
                "summary": "Eliminar cita",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la cita",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/citaservicios": {
            "get": {
                "description": "Búsqueda opcional por mascota, cliente, servicio o estado de la cita (subcadena, sin distinguir mayúsculas).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "citaservicios"
                ],
                "summary": "Listar servicios de citas",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Texto a buscar",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/appointmentservices.AppointmentService"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "post": {
                "description": "Obligatorios: CitaID y ServicioID. Un servicio no se puede repetir en la misma cita.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "citaservicios"
                ],
                "summary": "Crear servicio de cita",
                "parameters": [
                    {
                        "description": "Datos del servicio de cita",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/appointmentservices.Input"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/web.CreatedBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/citaservicios/reporte/{id}": {
            "get": {
                "description": "Devuelve la cita con mascota, cliente, empleado, servicios y TotalPagar.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "citaservicios"
                ],
                "summary": "Reporte de una cita",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la cita",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/appointmentservices.Report"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/citaservicios/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "citaservicios"
                ],
                "summary": "Obtener servicio de cita por ID",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del servicio de cita",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/appointmentservices.AppointmentService"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "citaservicios"
                ],
                "summary": "Actualizar servicio de cita",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del servicio de cita",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Datos del servicio de cita",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/appointmentservices.Input"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "citaservicios"
                ],
                "summary": "Eliminar servicio de cita",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del servicio de cita",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/clientes": {
            "get": {
                "description": "Búsqueda opcional por PrimerNombre, apellidos, DNI, Telefono o Correo (subcadena, sin distinguir mayúsculas).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clientes"
                ],
                "summary": "Listar clientes",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Texto a buscar",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/clients.Client"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "post": {
                "description": "Obligatorios: PrimerNombre, ApellidoPaterno, ApellidoMaterno y DNI (8 dígitos). Si no viene Correo se guarda a@gmail.com.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clientes"
                ],
                "summary": "Crear cliente",
                "parameters": [
                    {
                        "description": "Datos del cliente",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/clients.Input"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/web.CreatedBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/clientes/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clientes"
                ],
                "summary": "Obtener cliente por ID",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del cliente",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/clients.Client"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clientes"
                ],
                "summary": "Actualizar cliente",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del cliente",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Datos del cliente",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/clients.Input"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "description": "Devuelve 409 si tiene registros asociados.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clientes"
                ],
                "summary": "Eliminar cliente",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del cliente",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/dashboard/counts": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Totales de clientes y mascotas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dashboard.Counts"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/dashboard/recent-activity": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Actividad reciente",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dashboard.Activity"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/dashboard/summary": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Resumen de citas del día y de la semana",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dashboard.Summary"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/dashboard/upcoming-citas": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Próximas citas abiertas",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Cantidad máxima (default 5, máx 50)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dashboard.UpcomingAppointment"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/empleados": {
            "get": {
                "description": "Búsqueda opcional por nombres, DNI, Telefono, Correo o NombreRol (subcadena, sin distinguir mayúsculas).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "empleados"
                ],
                "summary": "Listar empleados",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Texto a buscar",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/employees.Employee"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "post": {
                "description": "Obligatorios: PrimerNombre, ApellidoPaterno, ApellidoMaterno, DNI (8 dígitos) y RolID.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "empleados"
                ],
                "summary": "Crear empleado",
                "parameters": [
                    {
                        "description": "Datos del empleado",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/employees.Input"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/web.CreatedBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/empleados/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "empleados"
                ],
                "summary": "Obtener empleado por ID",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del empleado",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/employees.Employee"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "empleados"
                ],
                "summary": "Actualizar empleado",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del empleado",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Datos del empleado",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/employees.Input"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "description": "Devuelve 409 si tiene registros asociados.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "empleados"
                ],
                "summary": "Eliminar empleado",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del empleado",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/especies": {
            "get": {
                "description": "Búsqueda opcional por NombreEspecie (subcadena, sin distinguir mayúsculas).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "especies"
                ],
                "summary": "Listar especies",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Texto a buscar",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/species.Species"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "especies"
                ],
                "summary": "Crear especie",
                "parameters": [
                    {
                        "description": "Datos de la especie",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/species.Input"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/web.CreatedBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/especies/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "especies"
                ],
                "summary": "Obtener especie por ID",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la especie",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/species.Species"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "especies"
                ],
                "summary": "Actualizar especie",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la especie",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Datos de la especie",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/species.Input"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "description": "Devuelve 409 si tiene registros asociados.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "especies"
                ],
                "summary": "Eliminar especie",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la especie",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/mascotas": {
            "get": {
                "description": "Búsqueda opcional por Nombre, nombre del cliente, raza o especie (subcadena, sin distinguir mayúsculas).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "mascotas"
                ],
                "summary": "Listar mascotas",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Texto a buscar",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/pets.Pet"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "post": {
                "description": "Obligatorios: Nombre, Edad (>= 0), Sexo, ClienteID y RazaID. Los IDs aceptan número o string numérico.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "mascotas"
                ],
                "summary": "Crear mascota",
                "parameters": [
                    {
                        "description": "Datos de la mascota",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pets.Input"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/web.CreatedBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/mascotas/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "mascotas"
                ],
                "summary": "Obtener mascota por ID",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la mascota",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.Pet"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "mascotas"
                ],
                "summary": "Actualizar mascota",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la mascota",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Datos de la mascota",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pets.Input"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "description": "Devuelve 409 si tiene registros asociados.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "mascotas"
                ],
                "summary": "Eliminar mascota",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la mascota",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/razas": {
            "get": {
                "description": "Búsqueda opcional por NombreRaza o NombreEspecie (subcadena, sin distinguir mayúsculas).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "razas"
                ],
                "summary": "Listar razas",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Texto a buscar",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/breeds.Breed"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "post": {
                "description": "Obligatorios: NombreRaza y EspecieID.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "razas"
                ],
                "summary": "Crear raza",
                "parameters": [
                    {
                        "description": "Datos de la raza",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/breeds.Input"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/web.CreatedBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/razas/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "razas"
                ],
                "summary": "Obtener raza por ID",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la raza",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeds.Breed"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "razas"
                ],
                "summary": "Actualizar raza",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la raza",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Datos de la raza",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/breeds.Input"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "description": "Devuelve 409 si tiene registros asociados.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "razas"
                ],
                "summary": "Eliminar raza",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la raza",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/roles": {
            "get": {
                "description": "Búsqueda opcional por NombreRol (subcadena, sin distinguir mayúsculas).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "roles"
                ],
                "summary": "Listar roles",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Texto a buscar",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/roles.Role"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "roles"
                ],
                "summary": "Crear rol",
                "parameters": [
                    {
                        "description": "Datos del rol",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/roles.Input"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/web.CreatedBody"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "NombreRol": {
                                            "type": "string"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/roles/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "roles"
                ],
                "summary": "Obtener rol por ID",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del rol",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/roles.Role"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "roles"
                ],
                "summary": "Actualizar rol",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del rol",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Datos del rol",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/roles.Input"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "description": "Devuelve 409 si tiene registros asociados.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "roles"
                ],
                "summary": "Eliminar rol",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del rol",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/servicios": {
            "get": {
                "description": "Búsqueda opcional por NombreServicio, Descripcion, subcategoría o categoría (subcadena, sin distinguir mayúsculas).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "servicios"
                ],
                "summary": "Listar servicios",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Texto a buscar",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/clinicservices.ClinicService"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "post": {
                "description": "Obligatorios: NombreServicio y Precio (número o string, >= 0 y < 100000000). SubcategoriaID es opcional.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "servicios"
                ],
                "summary": "Crear servicio",
                "parameters": [
                    {
                        "description": "Datos del servicio",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/clinicservices.Input"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/web.CreatedBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/servicios/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "servicios"
                ],
                "summary": "Obtener servicio por ID",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del servicio",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/clinicservices.ClinicService"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "servicios"
                ],
                "summary": "Actualizar servicio",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del servicio",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Datos del servicio",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/clinicservices.Input"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "description": "Devuelve 409 si tiene registros asociados.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "servicios"
                ],
                "summary": "Eliminar servicio",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del servicio",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/subcategorias": {
            "get": {
                "description": "Búsqueda opcional por Nombre o NombreCategoria (subcadena, sin distinguir mayúsculas).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "subcategorias"
                ],
                "summary": "Listar subcategorías",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Texto a buscar",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/subcategories.Subcategory"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "post": {
                "description": "Obligatorios: CategoriaProductoID y Nombre. Descripcion vacía se guarda como null.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "subcategorias"
                ],
                "summary": "Crear subcategoría",
                "parameters": [
                    {
                        "description": "Datos de la subcategoría",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/subcategories.Input"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/web.CreatedBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/api/subcategorias/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "subcategorias"
                ],
                "summary": "Obtener subcategoría por ID",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la subcategoría",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/subcategories.Subcategory"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "subcategorias"
                ],
                "summary": "Actualizar subcategoría",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la subcategoría",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Datos de la subcategoría",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/subcategories.Input"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "description": "Devuelve 409 si tiene registros asociados.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "subcategorias"
                ],
                "summary": "Eliminar subcategoría",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la subcategoría",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/web.MessageBody"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/web.ErrorBody"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Responde 200 si el servicio está arriba. Con Postgres, además hace ping a la base.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Estado del servicio",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.healthResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/router.healthResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "appointments.Appointment": {
            "type": "object",
            "properties": {
                "CitaID": {
                    "type": "integer"
                },
                "ClienteApellidoMaterno": {
                    "type": "string"
                },
                "ClienteApellidoPaterno": {
                    "type": "string"
                },
                "ClientePrimerNombre": {
                    "type": "string"
                },
                "EmpleadoApellidoPaterno": {
                    "type": "string"
                },
                "EmpleadoID": {
                    "type": "integer"
                },
                "EmpleadoPrimerNombre": {
                    "type": "string"
                },
                "EmpleadoRol": {
                    "type": "string"
                },
                "Estado": {
                    "$ref": "#/definitions/appointments.Status"
                },
                "Fecha": {
                    "type": "string"
                },
                "FechaActualizacion": {
                    "type": "string"
                },
                "FechaCreacion": {
                    "type": "string"
                },
                "MascotaID": {
                    "type": "integer"
                },
                "MascotaNombre": {
                    "type": "string"
                }
            }
        },
        "appointments.Input": {
            "type": "object",
            "properties": {
                "EmpleadoID": {
                    "type": "integer"
                },
                "Estado": {
                    "type": "string"
                },
                "Fecha": {
                    "type": "string"
                },
                "MascotaID": {
                    "type": "integer"
                }
            }
        },
        "appointments.Status": {
            "type": "string",
            "enum": [
                "Pendiente",
                "Programada",
                "Confirmada",
                "Completada",
                "Cancelada"
            ],
            "x-enum-varnames": [
                "StatusPending",
                "StatusScheduled",
                "StatusConfirmed",
                "StatusCompleted",
                "StatusCancelled"
            ]
        },
        "appointmentservices.AppointmentService": {
            "type": "object",
            "properties": {
                "CitaEstado": {
                    "type": "string"
                },
                "CitaFecha": {
                    "type": "string"
                },
                "CitaID": {
                    "type": "integer"
                },
                "CitaServicioID": {
                    "type": "integer"
                },
                "ClienteApellidoMaterno": {
                    "type": "string"
                },
                "ClienteApellidoPaterno": {
                    "type": "string"
                },
                "ClientePrimerNombre": {
                    "type": "string"
                },
                "MascotaNombre": {
                    "type": "string"
                },
                "ServicioDescripcion": {
                    "type": "string"
                },
                "ServicioID": {
                    "type": "integer"
                },
                "ServicioNombre": {
                    "type": "string"
                },
                "ServicioPrecio": {
                    "type": "number"
                }
            }
        },
        "appointmentservices.Input": {
            "type": "object",
            "properties": {
                "CitaID": {
                    "type": "integer"
                },
                "ServicioID": {
                    "type": "integer"
                }
            }
        },
        "appointmentservices.Report": {
            "type": "object",
            "properties": {
                "CitaID": {
                    "type": "integer"
                },
                "Cliente": {
                    "$ref": "#/definitions/appointmentservices.ReportClient"
                },
                "Empleado": {
                    "$ref": "#/definitions/appointmentservices.ReportEmployee"
                },
                "Estado": {
                    "type": "string"
                },
                "Fecha": {
                    "type": "string"
                },
                "Mascota": {
                    "$ref": "#/definitions/appointmentservices.ReportPet"
                },
                "Servicios": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/appointmentservices.ReportLine"
                    }
                },
                "TotalPagar": {
                    "type": "number"
                }
            }
        },
        "appointmentservices.ReportClient": {
            "type": "object",
            "properties": {
                "ApellidoMaterno": {
                    "type": "string"
                },
                "ApellidoPaterno": {
                    "type": "string"
                },
                "Correo": {
                    "type": "string"
                },
                "DNI": {
                    "type": "string"
                },
                "Direccion": {
                    "type": "string"
                },
                "ID": {
                    "type": "integer"
                },
                "PrimerNombre": {
                    "type": "string"
                },
                "Telefono": {
                    "type": "string"
                }
            }
        },
        "appointmentservices.ReportEmployee": {
            "type": "object",
            "properties": {
                "ApellidoPaterno": {
                    "type": "string"
                },
                "PrimerNombre": {
                    "type": "string"
                },
                "Rol": {
                    "type": "string"
                }
            }
        },
        "appointmentservices.ReportLine": {
            "type": "object",
            "properties": {
                "Descripcion": {
                    "type": "string"
                },
                "ID": {
                    "type": "integer"
                },
                "Nombre": {
                    "type": "string"
                },
                "Precio": {
                    "type": "number"
                }
            }
        },
        "appointmentservices.ReportPet": {
            "type": "object",
            "properties": {
                "Edad": {
                    "type": "integer"
                },
                "Especie": {
                    "type": "string"
                },
                "ID": {
                    "type": "integer"
                },
                "Nombre": {
                    "type": "string"
                },
                "Raza": {
                    "type": "string"
                },
                "Sexo": {
                    "type": "string"
                }
            }
        },
        "breeds.Breed": {
            "type": "object",
            "properties": {
                "EspecieID": {
                    "type": "integer"
                },
                "NombreEspecie": {
                    "type": "string"
                },
                "NombreRaza": {
                    "type": "string"
                },
                "RazaID": {
                    "type": "integer"
                }
            }
        },
        "breeds.Input": {
            "type": "object",
            "properties": {
                "EspecieID": {
                    "type": "integer"
                },
                "NombreRaza": {
                    "type": "string"
                }
            }
        },
        "categories.Category": {
            "type": "object",
            "properties": {
                "CategoriaProductoID": {
                    "type": "integer"
                },
                "NombreCategoria": {
                    "type": "string"
                }
            }
        },
        "categories.Input": {
            "type": "object",
            "properties": {
                "NombreCategoria": {
                    "type": "string"
                }
            }
        },
        "clients.Client": {
            "type": "object",
            "properties": {
                "ApellidoMaterno": {
                    "type": "string"
                },
                "ApellidoPaterno": {
                    "type": "string"
                },
                "ClienteID": {
                    "type": "integer"
                },
                "Correo": {
                    "type": "string"
                },
                "DNI": {
                    "type": "string"
                },
                "Direccion": {
                    "type": "string"
                },
                "FechaActualizacion": {
                    "type": "string"
                },
                "FechaCreacion": {
                    "type": "string"
                },
                "PrimerNombre": {
                    "type": "string"
                },
                "Telefono": {
                    "type": "string"
                }
            }
        },
        "clients.Input": {
            "type": "object",
            "properties": {
                "ApellidoMaterno": {
                    "type": "string"
                },
                "ApellidoPaterno": {
                    "type": "string"
                },
                "Correo": {
                    "type": "string"
                },
                "DNI": {
                    "type": "string"
                },
                "Direccion": {
                    "type": "string"
                },
                "PrimerNombre": {
                    "type": "string"
                },
                "Telefono": {
                    "type": "string"
                }
            }
        },
        "clinicservices.ClinicService": {
            "type": "object",
            "properties": {
                "CategoriaProductoID": {
                    "type": "integer"
                },
                "Descripcion": {
                    "type": "string"
                },
                "NombreCategoria": {
                    "type": "string"
                },
                "NombreServicio": {
                    "type": "string"
                },
                "NombreSubcategoria": {
                    "type": "string"
                },
                "Precio": {
                    "type": "number"
                },
                "ServicioID": {
                    "type": "integer"
                },
                "SubcategoriaID": {
                    "type": "integer"
                }
            }
        },
        "clinicservices.Input": {
            "type": "object",
            "properties": {
                "Descripcion": {
                    "type": "string"
                },
                "NombreServicio": {
                    "type": "string"
                },
                "Precio": {
                    "type": "number"
                },
                "SubcategoriaID": {
                    "type": "integer"
                }
            }
        },
        "dashboard.Activity": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "type": {
                    "$ref": "#/definitions/dashboard.ActivityType"
                }
            }
        },
        "dashboard.ActivityType": {
            "type": "string",
            "enum": [
                "cita_agendada",
                "cliente_nuevo",
                "cita_completada"
            ],
            "x-enum-varnames": [
                "ActivityAppointmentScheduled",
                "ActivityNewClient",
                "ActivityAppointmentCompleted"
            ]
        },
        "dashboard.Counts": {
            "type": "object",
            "properties": {
                "totalClients": {
                    "type": "integer"
                },
                "totalMascotas": {
                    "type": "integer"
                }
            }
        },
        "dashboard.Summary": {
            "type": "object",
            "properties": {
                "cancelledToday": {
                    "type": "integer"
                },
                "cancelledWeek": {
                    "type": "integer"
                },
                "completedToday": {
                    "type": "integer"
                },
                "completedWeek": {
                    "type": "integer"
                },
                "pending": {
                    "type": "integer"
                },
                "today": {
                    "type": "integer"
                }
            }
        },
        "dashboard.UpcomingAppointment": {
            "type": "object",
            "properties": {
                "CitaID": {
                    "type": "integer"
                },
                "ClienteNombre": {
                    "type": "string"
                },
                "Fecha": {
                    "type": "string"
                },
                "MascotaNombre": {
                    "type": "string"
                },
                "ServicioPrincipal": {
                    "type": "string"
                }
            }
        },
        "employees.Employee": {
            "type": "object",
            "properties": {
                "ApellidoMaterno": {
                    "type": "string"
                },
                "ApellidoPaterno": {
                    "type": "string"
                },
                "Correo": {
                    "type": "string"
                },
                "DNI": {
                    "type": "string"
                },
                "EmpleadoID": {
                    "type": "integer"
                },
                "NombreRol": {
                    "type": "string"
                },
                "PrimerNombre": {
                    "type": "string"
                },
                "RolID": {
                    "type": "integer"
                },
                "Telefono": {
                    "type": "string"
                }
            }
        },
        "employees.Input": {
            "type": "object",
            "properties": {
                "ApellidoMaterno": {
                    "type": "string"
                },
                "ApellidoPaterno": {
                    "type": "string"
                },
                "Correo": {
                    "type": "string"
                },
                "DNI": {
                    "type": "string"
                },
                "PrimerNombre": {
                    "type": "string"
                },
                "RolID": {
                    "type": "integer"
                },
                "Telefono": {
                    "type": "string"
                }
            }
        },
        "pets.Input": {
            "type": "object",
            "properties": {
                "ClienteID": {
                    "type": "integer"
                },
                "Edad": {
                    "type": "integer"
                },
                "Nombre": {
                    "type": "string"
                },
                "RazaID": {
                    "type": "integer"
                },
                "Sexo": {
                    "type": "string"
                }
            }
        },
        "pets.Pet": {
            "type": "object",
            "properties": {
                "ClienteApellidoMaterno": {
                    "type": "string"
                },
                "ClienteApellidoPaterno": {
                    "type": "string"
                },
                "ClienteID": {
                    "type": "integer"
                },
                "ClientePrimerNombre": {
                    "type": "string"
                },
                "Edad": {
                    "type": "integer"
                },
                "EspecieID": {
                    "type": "integer"
                },
                "MascotaID": {
                    "type": "integer"
                },
                "Nombre": {
                    "type": "string"
                },
                "NombreEspecie": {
                    "type": "string"
                },
                "NombreRaza": {
                    "type": "string"
                },
                "RazaID": {
                    "type": "integer"
                },
                "Sexo": {
                    "$ref": "#/definitions/pets.Sex"
                }
            }
        },
        "pets.Sex": {
            "type": "string",
            "enum": [
                "Macho",
                "Hembra"
            ],
            "x-enum-varnames": [
                "SexMale",
                "SexFemale"
            ]
        },
        "roles.Input": {
            "type": "object",
            "properties": {
                "NombreRol": {
                    "type": "string"
                }
            }
        },
        "roles.Role": {
            "type": "object",
            "properties": {
                "NombreRol": {
                    "type": "string"
                },
                "RolID": {
                    "type": "integer"
                }
            }
        },
        "router.healthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "storage": {
                    "type": "string"
                }
            }
        },
        "species.Input": {
            "type": "object",
            "properties": {
                "NombreEspecie": {
                    "type": "string"
                }
            }
        },
        "species.Species": {
            "type": "object",
            "properties": {
                "EspecieID": {
                    "type": "integer"
                },
                "NombreEspecie": {
                    "type": "string"
                }
            }
        },
        "subcategories.Input": {
            "type": "object",
            "properties": {
                "CategoriaProductoID": {
                    "type": "integer"
                },
                "Descripcion": {
                    "type": "string"
                },
                "Nombre": {
                    "type": "string"
                }
            }
        },
        "subcategories.Subcategory": {
            "type": "object",
            "properties": {
                "CategoriaProductoID": {
                    "type": "integer"
                },
                "Descripcion": {
                    "type": "string"
                },
                "Nombre": {
                    "type": "string"
                },
                "NombreCategoria": {
                    "type": "string"
                },
                "SubcategoriaID": {
                    "type": "integer"
                }
            }
        },
        "web.CreatedBody": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "web.ErrorBody": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "web.MessageBody": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Veterinaria API",
	Description:      "Backend de gestión de la clínica veterinaria: clientes, mascotas, empleados, servicios y citas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
