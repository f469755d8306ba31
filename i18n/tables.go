package i18n

var tables = map[string]map[string]string{
	"en": {
		"hello":      "Hello {0}!",
		"date":       "Date",
		"weather":    "Weather",
		"host":       "Host",
		"os":         "OS",
		"kernel":     "Kernel",
		"ram":        "RAM",
		"disk":       "Disk",
		"cpu":        "CPU",
		"gpu":        "GPU",
		"uptime":     "Uptime",
		"shell":      "Shell",
		"packages":   "Packages",
		"wm":         "WM",
		"de":         "DE",
		"playing":    "Playing ",
		"celsius":    "C",
		"fahrenheit": "F",
		"unknown":    "Unknown",
	},
	"es": {
		"hello":      "¡Hola {0}!",
		"date":       "Fecha",
		"weather":    "Clima",
		"host":       "Host",
		"os":         "SO",
		"kernel":     "Kernel",
		"ram":        "RAM",
		"disk":       "Disco",
		"cpu":        "CPU",
		"gpu":        "GPU",
		"uptime":     "Tiempo de actividad",
		"shell":      "Shell",
		"packages":   "Paquetes",
		"wm":         "WM",
		"de":         "DE",
		"playing":    "Reproduciendo ",
		"celsius":    "C",
		"fahrenheit": "F",
		"unknown":    "Desconocido",
	},
	"fr": {
		"hello":      "Bonjour {0}!",
		"date":       "Date",
		"weather":    "Météo",
		"host":       "Hôte",
		"os":         "OS",
		"kernel":     "Noyau",
		"ram":        "RAM",
		"disk":       "Disque",
		"cpu":        "CPU",
		"gpu":        "GPU",
		"uptime":     "Temps d'activité",
		"shell":      "Shell",
		"packages":   "Paquets",
		"wm":         "WM",
		"de":         "DE",
		"playing":    "Lecture ",
		"celsius":    "C",
		"fahrenheit": "F",
		"unknown":    "Inconnu",
	},
	"de": {
		"hello":      "Hallo {0}!",
		"date":       "Datum",
		"weather":    "Wetter",
		"host":       "Host",
		"os":         "OS",
		"kernel":     "Kernel",
		"ram":        "RAM",
		"disk":       "Festplatte",
		"cpu":        "CPU",
		"gpu":        "GPU",
		"uptime":     "Betriebszeit",
		"shell":      "Shell",
		"packages":   "Pakete",
		"wm":         "WM",
		"de":         "DE",
		"playing":    "Wiedergabe ",
		"celsius":    "C",
		"fahrenheit": "F",
		"unknown":    "Unbekannt",
	},
}
