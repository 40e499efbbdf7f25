package handlers

// @title Productos API
// @version 1.0
// @description CRUD over the Supabase productos table, served as Netlify functions
// @description and by a local gin server for development.

// @contact.name API Support
// @contact.url https://github.com/rogelioGuerrero/apisupabase

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8888
// @BasePath /api

// @tag.name productos
// @tag.description Producto management operations

// @tag.name health
// @tag.description Health check
