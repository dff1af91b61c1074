package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gestioncomercial/api-ventas/internal/auth"
	"github.com/gestioncomercial/api-ventas/internal/cliente"
	"github.com/gestioncomercial/api-ventas/internal/clienteservicio"
	"github.com/gestioncomercial/api-ventas/internal/evaluacion"
	"github.com/gestioncomercial/api-ventas/internal/objetivocualitativo"
	"github.com/gestioncomercial/api-ventas/internal/objetivocuantitativo"
	"github.com/gestioncomercial/api-ventas/internal/objetivotecnico"
	"github.com/gestioncomercial/api-ventas/internal/respaldo"
	"github.com/gestioncomercial/api-ventas/internal/servicio"
	"github.com/gestioncomercial/api-ventas/internal/tecnico"
	"github.com/gestioncomercial/api-ventas/internal/tenant"
	"github.com/gestioncomercial/api-ventas/internal/utils/db"
	"github.com/gestioncomercial/api-ventas/internal/vendedor"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("sin archivo .env; se usan las variables del entorno")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Error al conectar a la base:", err)
	}

	// AutoMigrate para todos los modelos
	if err := database.AutoMigrate(
		&tenant.Tenant{},
		&tenant.TenantUser{},
		&vendedor.Vendedor{},
		&tecnico.Tecnico{},
		&cliente.Cliente{},
		&servicio.Servicio{},
		&clienteservicio.ClienteServicio{},
		&evaluacion.Evaluacion{},
		&objetivotecnico.ObjetivoTecnico{},
		&objetivocuantitativo.PlantillaCuantitativa{},
		&objetivocuantitativo.ObjetivoCuantitativo{},
		&objetivocuantitativo.AsignacionCuantitativa{},
		&objetivocualitativo.ObjetivoCualitativo{},
		&objetivocualitativo.AsignacionCualitativa{},
	); err != nil {
		log.Fatal("Error en AutoMigrate:", err)
	}

	guard := tenant.NewGuard(database)

	// Handlers
	tenantHandler := tenant.NewHandler(database)
	clienteHandler := cliente.NewHandler(database, guard)
	servicioHandler := servicio.NewHandler(database)
	asignacionHandler := clienteservicio.NewHandler(database, os.Getenv("ALERT_WEBHOOK_URL"))
	tecnicoHandler := tecnico.NewHandler(database)
	evaluacionHandler := evaluacion.NewHandler(database)
	objetivoTecHandler := objetivotecnico.NewHandler(database)
	cuantHandler := objetivocuantitativo.NewHandler(database, guard)
	cualHandler := objetivocualitativo.NewHandler(database, guard)
	vendedorHandler := vendedor.NewHandler(database)

	backupDir := os.Getenv("BACKUP_DIR")
	if backupDir == "" {
		backupDir = "./backups"
	}
	storage, err := respaldo.NewStorage(backupDir)
	if err != nil {
		log.Fatal("Error al preparar el directorio de respaldos:", err)
	}
	respaldoHandler := respaldo.NewHandler(storage, respaldo.NewPgRunnerFromEnv())

	// Router
	r := mux.NewRouter()

	// Rutas públicas
	r.HandleFunc("/api/auth/login", tenantHandler.Login).Methods("POST")

	// Rutas autenticadas
	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.MiddlewareAutenticacion)
	api.Use(guard.Middleware)

	api.HandleFunc("/me", tenantHandler.Me).Methods("GET")
	api.Handle("/usuarios", auth.RequireAdmin(http.HandlerFunc(tenantHandler.CrearUsuario))).Methods("POST")

	// Rutas de clientes
	api.HandleFunc("/clientes", clienteHandler.Listar).Methods("GET")
	api.HandleFunc("/clientes", clienteHandler.Crear).Methods("POST")
	api.HandleFunc("/clientes/matrix/data", clienteHandler.MatrizData).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/clientes/{id}", clienteHandler.Deletar).Methods("DELETE")

	// Rutas de servicios
	api.HandleFunc("/servicios", servicioHandler.Listar).Methods("GET")
	api.HandleFunc("/servicios", servicioHandler.Crear).Methods("POST")
	api.HandleFunc("/servicios/{id}", servicioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/servicios/{id}", servicioHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/servicios/{id}", servicioHandler.Deletar).Methods("DELETE")

	// Rutas de asignaciones cliente-servicio
	api.HandleFunc("/cliente-servicios", asignacionHandler.Crear).Methods("POST")
	api.HandleFunc("/cliente-servicios/health-check", asignacionHandler.HealthCheck).Methods("POST")
	api.HandleFunc("/cliente-servicios/cliente/{clienteId}", asignacionHandler.ListarPorCliente).Methods("GET")
	api.HandleFunc("/cliente-servicios/cliente/{clienteId}/count", asignacionHandler.ContarPorCliente).Methods("GET")
	api.HandleFunc("/cliente-servicios/cliente/{clienteId}/service/{servicioId}", asignacionHandler.DeletarPorPar).Methods("DELETE")
	api.HandleFunc("/cliente-servicios/{id}", asignacionHandler.ActualizarNotas).Methods("PUT")

	// Rutas de técnicos y sus sub-recursos
	api.HandleFunc("/tecnicos", tecnicoHandler.Listar).Methods("GET")
	api.HandleFunc("/tecnicos", tecnicoHandler.Crear).Methods("POST")
	api.HandleFunc("/tecnicos/{id}", tecnicoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/tecnicos/{id}", tecnicoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/tecnicos/{id}", tecnicoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/tecnicos/{id}/evaluations", evaluacionHandler.ListarPorTecnico).Methods("GET")
	api.HandleFunc("/tecnicos/{id}/evaluations", evaluacionHandler.Crear).Methods("POST")
	api.HandleFunc("/tecnicos/{id}/evaluations/{evalId}", evaluacionHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/tecnicos/{id}/evaluations/{evalId}", evaluacionHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/tecnicos/{id}/objectives", objetivoTecHandler.ListarPorTecnico).Methods("GET")
	api.HandleFunc("/tecnicos/{id}/objectives", objetivoTecHandler.Crear).Methods("POST")
	api.HandleFunc("/tecnicos/{id}/objectives/{objetivoId}", objetivoTecHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/tecnicos/{id}/objectives/{objetivoId}", objetivoTecHandler.Deletar).Methods("DELETE")

	// Rutas de vendedores
	api.HandleFunc("/vendedores", vendedorHandler.Listar).Methods("GET")
	api.HandleFunc("/vendedores", vendedorHandler.Crear).Methods("POST")
	api.HandleFunc("/vendedores/{id}", vendedorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/vendedores/{id}", vendedorHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/vendedores/{id}", vendedorHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/vendedores/{id}/resumen", vendedorHandler.ObtenerResumen).Methods("GET")

	// Rutas de objetivos cuantitativos
	api.HandleFunc("/quantitative-objectives", cuantHandler.Listar).Methods("GET")
	api.HandleFunc("/quantitative-objectives", cuantHandler.Crear).Methods("POST")
	api.HandleFunc("/quantitative-objectives/templates", cuantHandler.ListarPlantillas).Methods("GET")
	api.HandleFunc("/quantitative-objectives/templates", cuantHandler.CrearPlantilla).Methods("POST")
	api.HandleFunc("/quantitative-objectives/templates/{id}", cuantHandler.DeletarPlantilla).Methods("DELETE")
	api.HandleFunc("/quantitative-objectives/asignaciones/{asignacionId}", cuantHandler.AtualizarAsignacion).Methods("PUT")
	api.HandleFunc("/quantitative-objectives/{id}", cuantHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/quantitative-objectives/{id}", cuantHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/quantitative-objectives/{id}", cuantHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/quantitative-objectives/{id}/difference", cuantHandler.Diferencia).Methods("GET")

	// Rutas de objetivos cualitativos
	api.HandleFunc("/qualitative", cualHandler.Listar).Methods("GET")
	api.HandleFunc("/qualitative", cualHandler.Crear).Methods("POST")
	api.HandleFunc("/qualitative/asignaciones/{asignacionId}", cualHandler.AtualizarAsignacion).Methods("PUT")
	api.HandleFunc("/qualitative/{id}", cualHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/qualitative/{id}", cualHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/qualitative/{id}", cualHandler.Deletar).Methods("DELETE")

	// Rutas de administración de la base (solo admin, plan con backups)
	adminDB := api.PathPrefix("/database").Subrouter()
	adminDB.Use(auth.RequireAdmin)
	adminDB.Use(guard.RequireFeature(tenant.FeatureBackups))
	adminDB.HandleFunc("/list", respaldoHandler.Listar).Methods("GET")
	adminDB.HandleFunc("/backup", respaldoHandler.Crear).Methods("POST")
	adminDB.HandleFunc("/backup/{filename}", respaldoHandler.Eliminar).Methods("DELETE")
	adminDB.HandleFunc("/download/{filename}", respaldoHandler.Descargar).Methods("GET")
	adminDB.HandleFunc("/restore-with-upload", respaldoHandler.RestaurarConUpload).Methods("POST")
	adminDB.HandleFunc("/status", respaldoHandler.Status).Methods("GET")

	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "*"
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Println("Servidor corriendo en http://localhost:" + port)
	log.Fatal(http.ListenAndServe(":"+port, c.Handler(r)))
}
