package i18n

// translations carries the subset of the string tables the CLI surfaces.
var translations = map[Language]map[string]string{
	LanguageEnglish: {
		"todaysWork":    "Today's Work",
		"thisWeek":      "This Week",
		"thisMonth":     "This Month",
		"totalWorkTime": "Total Work Time",
		"netWorkTime":   "Net Work Time",
		"breakTime":     "Break Time",
		"overtime":      "Overtime",
		"efficiency":    "Efficiency",
		"recentEntries": "Recent Entries",
		"noEntriesYet":  "No time entries yet",
		"hourlyRate":    "Hourly Rate",
		"selectProject": "Select Project",
		"startTracking": "Start Tracking",
		"running":       "running",
	},
	LanguageGerman: {
		"todaysWork":    "Heutige Arbeit",
		"thisWeek":      "Diese Woche",
		"thisMonth":     "Dieser Monat",
		"totalWorkTime": "Gesamtarbeitszeit",
		"netWorkTime":   "Nettoarbeitszeit",
		"breakTime":     "Pausenzeit",
		"overtime":      "Überstunden",
		"efficiency":    "Effizienz",
		"recentEntries": "Letzte Einträge",
		"noEntriesYet":  "Noch keine Zeiteinträge vorhanden",
		"hourlyRate":    "Stundenlohn",
		"selectProject": "Projekt auswählen",
		"startTracking": "Zeiterfassung starten",
		"running":       "laufend",
	},
	LanguageGreek: {
		"todaysWork":    "Σημερινή Εργασία",
		"thisWeek":      "Αυτή την Εβδομάδα",
		"thisMonth":     "Αυτόν τον Μήνα",
		"totalWorkTime": "Συνολικός Χρόνος Εργασίας",
		"netWorkTime":   "Καθαρός Χρόνος Εργασίας",
		"breakTime":     "Χρόνος Διαλείμματος",
		"overtime":      "Υπερωρίες",
		"efficiency":    "Αποδοτικότητα",
		"recentEntries": "Πρόσφατες Καταχωρήσεις",
		"noEntriesYet":  "Δεν υπάρχουν καταχωρήσεις χρόνου ακόμα",
		"hourlyRate":    "Ωριαίος Μισθός",
		"selectProject": "Επιλογή Έργου",
		"startTracking": "Έναρξη Καταγραφής",
		"running":       "τρέχει",
	},
}
