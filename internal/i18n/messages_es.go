package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Spanish

	// Shell
	message.SetString(lang, "app.title", "Sistema de Renta de DVDs")
	message.SetString(lang, "nav.rent", "Rentar")
	message.SetString(lang, "nav.return", "Devolver")
	message.SetString(lang, "nav.reports", "Reportes")
	message.SetString(lang, "status.checking", "API ...")
	message.SetString(lang, "status.online", "API EN LÍNEA")
	message.SetString(lang, "status.unstable", "API INESTABLE")
	message.SetString(lang, "status.offline", "API FUERA DE LÍNEA")
	message.SetString(lang, "help.title", "Atajos de teclado")
	message.SetString(lang, "help.dismiss", "Presione cualquier tecla para cerrar")

	// Key help
	message.SetString(lang, "key.next_view", "sig. pantalla")
	message.SetString(lang, "key.prev_view", "pantalla ant.")
	message.SetString(lang, "key.view_rent", "rentar")
	message.SetString(lang, "key.view_return", "devolver")
	message.SetString(lang, "key.view_reports", "reportes")
	message.SetString(lang, "key.up", "arriba")
	message.SetString(lang, "key.down", "abajo")
	message.SetString(lang, "key.next_field", "sig. campo")
	message.SetString(lang, "key.prev_field", "campo ant.")
	message.SetString(lang, "key.submit", "enviar")
	message.SetString(lang, "key.return", "devolver renta")
	message.SetString(lang, "key.cancel_rental", "cancelar renta")
	message.SetString(lang, "key.refresh", "refrescar")
	message.SetString(lang, "key.theme", "tema")
	message.SetString(lang, "key.help", "ayuda")
	message.SetString(lang, "key.quit", "salir")
	message.SetString(lang, "key.confirm", "confirmar")
	message.SetString(lang, "key.deny", "volver")

	// Rent form
	message.SetString(lang, "rent.title", "Rentar un DVD")
	message.SetString(lang, "rent.customer", "ID de Cliente")
	message.SetString(lang, "rent.inventory", "ID de Inventario")
	message.SetString(lang, "rent.staff", "ID de Staff")
	message.SetString(lang, "rent.submit", "Registrar Renta")
	message.SetString(lang, "rent.processing", "Procesando...")
	message.SetString(lang, "rent.success", "¡Renta exitosa! Nuevo ID de Renta: %s")
	message.SetString(lang, "rent.error", "Error al crear la renta. Por favor, verifique los IDs.")

	// Return view
	message.SetString(lang, "return.title", "Devolver o Cancelar una Renta")
	message.SetString(lang, "return.subtitle", "Lista de rentas actualmente pendientes de devolución.")
	message.SetString(lang, "return.loading", "Cargando...")
	message.SetString(lang, "return.load_error", "No se pudieron cargar las rentas pendientes.")
	message.SetString(lang, "return.empty", "No hay rentas pendientes.")
	message.SetString(lang, "return.col_id", "ID Renta")
	message.SetString(lang, "return.col_film", "Título de Película")
	message.SetString(lang, "return.col_customer", "Cliente")
	message.SetString(lang, "return.col_date", "Fecha de Renta")
	message.SetString(lang, "return.processing", "Procesando devolución #%s...")
	message.SetString(lang, "return.success", "¡Renta #%s devuelta exitosamente!")
	message.SetString(lang, "return.error", "Error al devolver la renta #%s.")
	message.SetString(lang, "cancel.title", "Cancelar renta")
	message.SetString(lang, "cancel.confirm", "¿Estás seguro de que quieres cancelar la renta #%s? Esta acción no se puede deshacer.")
	message.SetString(lang, "cancel.processing", "Cancelando renta #%s...")
	message.SetString(lang, "cancel.success", "¡Renta #%s cancelada exitosamente!")
	message.SetString(lang, "cancel.error", "Error al cancelar la renta #%s.")

	// Reports view
	message.SetString(lang, "reports.loading", "Cargando reportes...")
	message.SetString(lang, "reports.top", "Top 10 Películas Más Rentadas")
	message.SetString(lang, "reports.top_entry", "%s (%d rentas)")
	message.SetString(lang, "reports.revenue", "Ingresos por Empleado")
	message.SetString(lang, "reports.revenue_entry", "%s: $%s")
	message.SetString(lang, "reports.history", "Historial de Rentas por Cliente")
	message.SetString(lang, "reports.customer", "ID de Cliente")
	message.SetString(lang, "reports.search", "Buscar")
	message.SetString(lang, "reports.col_film", "Título de Película")
	message.SetString(lang, "reports.col_rented", "Fecha de Renta")
	message.SetString(lang, "reports.col_returned", "Fecha de Devolución")
	message.SetString(lang, "reports.pending", "Pendiente")
	message.SetString(lang, "reports.invalid_id", "ID de cliente inválido: %q")
	message.SetString(lang, "reports.search_error", "No se pudo cargar el historial del cliente #%s.")
}
