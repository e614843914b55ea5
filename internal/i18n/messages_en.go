package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Shell
	message.SetString(lang, "app.title", "DVD Rental System")
	message.SetString(lang, "nav.rent", "Rent")
	message.SetString(lang, "nav.return", "Return")
	message.SetString(lang, "nav.reports", "Reports")
	message.SetString(lang, "status.checking", "API ...")
	message.SetString(lang, "status.online", "API ONLINE")
	message.SetString(lang, "status.unstable", "API UNSTABLE")
	message.SetString(lang, "status.offline", "API OFFLINE")
	message.SetString(lang, "help.title", "Keyboard shortcuts")
	message.SetString(lang, "help.dismiss", "Press any key to close")

	// Key help
	message.SetString(lang, "key.next_view", "next view")
	message.SetString(lang, "key.prev_view", "prev view")
	message.SetString(lang, "key.view_rent", "rent")
	message.SetString(lang, "key.view_return", "return")
	message.SetString(lang, "key.view_reports", "reports")
	message.SetString(lang, "key.up", "up")
	message.SetString(lang, "key.down", "down")
	message.SetString(lang, "key.next_field", "next field")
	message.SetString(lang, "key.prev_field", "prev field")
	message.SetString(lang, "key.submit", "submit")
	message.SetString(lang, "key.return", "return rental")
	message.SetString(lang, "key.cancel_rental", "cancel rental")
	message.SetString(lang, "key.refresh", "refresh")
	message.SetString(lang, "key.theme", "theme")
	message.SetString(lang, "key.help", "help")
	message.SetString(lang, "key.quit", "quit")
	message.SetString(lang, "key.confirm", "confirm")
	message.SetString(lang, "key.deny", "back")

	// Rent form
	message.SetString(lang, "rent.title", "Rent a DVD")
	message.SetString(lang, "rent.customer", "Customer ID")
	message.SetString(lang, "rent.inventory", "Inventory ID")
	message.SetString(lang, "rent.staff", "Staff ID")
	message.SetString(lang, "rent.submit", "Create Rental")
	message.SetString(lang, "rent.processing", "Processing...")
	message.SetString(lang, "rent.success", "Rental created! New Rental ID: %s")
	message.SetString(lang, "rent.error", "Could not create the rental. Please check the IDs.")

	// Return view
	message.SetString(lang, "return.title", "Return or Cancel a Rental")
	message.SetString(lang, "return.subtitle", "Rentals currently pending return.")
	message.SetString(lang, "return.loading", "Loading...")
	message.SetString(lang, "return.load_error", "Could not load pending rentals.")
	message.SetString(lang, "return.empty", "No pending rentals.")
	message.SetString(lang, "return.col_id", "Rental ID")
	message.SetString(lang, "return.col_film", "Film Title")
	message.SetString(lang, "return.col_customer", "Customer")
	message.SetString(lang, "return.col_date", "Rental Date")
	message.SetString(lang, "return.processing", "Processing return #%s...")
	message.SetString(lang, "return.success", "Rental #%s returned!")
	message.SetString(lang, "return.error", "Could not return rental #%s.")
	message.SetString(lang, "cancel.title", "Cancel rental")
	message.SetString(lang, "cancel.confirm", "Are you sure you want to cancel rental #%s? This cannot be undone.")
	message.SetString(lang, "cancel.processing", "Cancelling rental #%s...")
	message.SetString(lang, "cancel.success", "Rental #%s cancelled!")
	message.SetString(lang, "cancel.error", "Could not cancel rental #%s.")

	// Reports view
	message.SetString(lang, "reports.loading", "Loading reports...")
	message.SetString(lang, "reports.top", "Top 10 Most Rented Films")
	message.SetString(lang, "reports.top_entry", "%s (%d rentals)")
	message.SetString(lang, "reports.revenue", "Revenue by Staff")
	message.SetString(lang, "reports.revenue_entry", "%s: $%s")
	message.SetString(lang, "reports.history", "Customer Rental History")
	message.SetString(lang, "reports.customer", "Customer ID")
	message.SetString(lang, "reports.search", "Search")
	message.SetString(lang, "reports.col_film", "Film Title")
	message.SetString(lang, "reports.col_rented", "Rental Date")
	message.SetString(lang, "reports.col_returned", "Return Date")
	message.SetString(lang, "reports.pending", "Pending")
	message.SetString(lang, "reports.invalid_id", "Invalid customer ID: %q")
	message.SetString(lang, "reports.search_error", "Could not load history for customer #%s.")
}
