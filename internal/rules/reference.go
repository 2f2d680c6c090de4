package rules

// ReferenceSection is one tab of the in-game rules summary. The text is
// descriptive game text; the contest section in particular has no executable
// counterpart and is served for reading only.
type ReferenceSection struct {
	// ID matches a RollType value where one exists; "contest" does not
	ID string `json:"id"`

	// Title is the tab heading
	Title string `json:"title"`

	// Body is the rules text, paragraph per entry
	Body []string `json:"body"`
}

// Reference returns the rules summary shown to players.
func Reference() []ReferenceSection {
	return []ReferenceSection{
		{
			ID:    "risk",
			Title: "Tirada de Riesgo",
			Body: []string{
				"Al intentar una tarea arriesgada, declara qué esperas que suceda.",
				"Reúne: 1 dado claro si tu Trasfondo, Ocupación o equipo ayudan; 1 dado claro por aceptar un Pacto con el Diablo; 1 dado oscuro si arriesgas cuerpo o mente, o realizas un Ritual.",
				"Resultados (dado más alto): 1-3 fracasas y la situación empeora; 4-5 tienes éxito pero hay una complicación; 6 éxito total.",
				"Tentar al destino: si no estás satisfecho, añade 1 dado oscuro y repite. Si el dado más alto es oscuro y supera tu Ruina actual, marca +1 Ruina.",
			},
		},
		{
			ID:    "hunt",
			Title: "Tirada de Exploración",
			Body: []string{
				"Cuando profundices en tu objetivo o hagas preguntas sobre el mundo, describe cómo exploras tu entorno.",
				"Tira 1 dado claro para hacer preguntas sobre el mundo, y 1 dado claro adicional si tienes una habilidad o pieza de equipo que facilitaría tu búsqueda.",
				"Resultados (dado más alto): 1 pierdes todos tus contadores de exploración y te encuentras con algo terrible; 2-3 te encuentras con algo terrible; 4-5 ganas 1 contador pero encuentras algo terrible; 6 ganas 1 contador de exploración.",
				"Que encuentres o no lo que buscas puede ser distinto a los resultados de tu tirada y depender de tus preguntas.",
			},
		},
		{
			ID:    "combat",
			Title: "Tirada de Combate",
			Body: []string{
				"Declara tu vulnerabilidad y tira un dado claro: ese es tu Punto Débil. Cada jugador tira el suyo.",
				"Tira un dado oscuro por cada buscador que participe en el combate (reserva común).",
				"Ruina: si algún dado oscuro iguala tu Punto Débil, aumentas tu Ruina en 1 por cada coincidencia.",
				"Resolución: suma los dos dados oscuros más altos contra la Resistencia del enemigo (2-12). Éxito: el enemigo es derrotado. Fallo: se añade un dado oscuro extra y se vuelve a tirar.",
				"Si te retiras, debes entregar tu Punto Débil a otro jugador, quien se vuelve vulnerable a ambos números.",
			},
		},
		{
			ID:    "help",
			Title: "Tirada de Ayuda",
			Body: []string{
				"Si otro cazador realiza una Tirada de Riesgo con dados oscuros, puedes ayudarle.",
				"Explica cómo te expones al peligro y tira 1 dado claro. El otro jugador puede usar tu resultado como si fuera suyo.",
				"Peligro: si tu dado claro coincide con alguno de los dados oscuros de la tirada principal, tu Ruina aumenta en 1.",
			},
		},
		{
			ID:    "contest",
			Title: "Tirada Enfrentada",
			Body: []string{
				"Cuando los cazadores compiten entre sí, cada jugador reúne: 1 dado claro si su Ocupación o Trasfondo da ventaja; 1 dado claro por cada punto de Ruina actual; 1 dado oscuro si es inherentemente peligroso; y tantos dados oscuros extra como quiera arriesgar.",
				"Resolución: cuenta los 6s. En empate, cuenta los 5s, y así sucesivamente.",
				"Cada dado oscuro que saque un 1 aumenta tu Ruina en 1.",
			},
		},
	}
}
