package models

// Collection names in the bestellapp database.
const (
	CollBestellungen  = "bestellungen"
	CollLieferanten   = "lieferanten"
	CollSpeisen       = "speisen"
	CollKategorien    = "kategorien"
	CollEinstellungen = "einstellungen"
	CollAdminBenutzer = "admin_benutzer"
)

// AllCollections lists every collection the application owns, used at startup
// to ensure they exist.
func AllCollections() []string {
	return []string{
		CollBestellungen,
		CollLieferanten,
		CollSpeisen,
		CollKategorien,
		CollEinstellungen,
		CollAdminBenutzer,
	}
}
