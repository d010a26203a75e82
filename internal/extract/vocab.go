package extract

// Closed vocabularies of the corpus. Loaded once, never mutated. A fragment
// belongs to a vocabulary either as a whole or as one of its
// semicolon-delimited parts.

var keywordTerms = []string{
	"carmina", "signacula", "Augusti/Augustae",
	"praenomen et nomen", "defixiones", "signacula medicorum",
	"liberti/libertae", "reges", "diplomata militaria",
	"termini", "milites", "sacerdotes christiani",
	"inscriptiones christianae", "tesserae nummulariae",
	"mulieres", "sacerdotes pagani", "leges",
	"tituli fabricationis", "nomen singulare", "servi/servae",
	"litterae erasae", "tituli honorarii",
	"officium/professio", "seviri Augustales",
	"litterae in litura", "tituli operum", "ordo decurionum",
	"tria nomina", "miliaria", "tituli possessionis",
	"ordo equester", "viri", "senatus consulta", "tituli sacri",
	"ordo senatorius", "sigilla impressa", "tituli sepulcrales",
}

var materialTerms = []string{
	"aes", "cyprum", "lignum", "os", "sucineus", "argentum",
	"ferrum", "musivum", "plumbum", "tectorium", "aurum",
	"gemma", "opus figlinae", "rupes", "textum", "corium",
	"lapis", "orichalcum", "steatitis", "vitrum",
}

var provinceNames = []string{
	"Achaia", "Baetica", "Galatia", "Mauretania Tingitana",
	"Regnum Bospori", "Aegyptus", "Barbaricum", "Raetia",
	"Gallia Narbonensis", "Mesopotamia", "Roma", "Asia",
	"Aemilia / Regio VIII", "Belgica", "Germania inferior",
	"Moesia inferior", "Samnium / Regio IV", "Armenia",
	"Africa proconsularis", "Britannia", "Germania superior",
	"Moesia superior", "Sardinia", "Alpes Cottiae", "Dacia",
	"Bruttium et Lucania / Regio III", "Hispania citerior",
	"Noricum", "Sicilia", "Alpes Graiae", "Cappadocia",
	"Italia", "Numidia", "Syria", "Alpes Maritimae", "Arabia",
	"Cilicia", "Latium et Campania / Regio I", "Palaestina",
	"Thracia", "Alpes Poeninae", "Corsica", "Macedonia",
	"Liguria / Regio IX", "Pannonia inferior", "Dalmatia",
	"Transpadana / Regio XI", "Apulia et Calabria / Regio II",
	"Creta et Cyrenaica", "Lugudunensis", "Pannonia superior",
	"Umbria / Regio VI", "Aquitania", "Aquitanica", "Cyprus",
	"Lusitania", "Picenum / Regio V", "Pontus et Bithynia",
	"Venetia et Histria / Regio X", "Provincia incerta",
	"Lycia et Pamphylia", "Etruria / Regio VII",
	"Mauretania Caesariensis", "Aquitani(c)a",
}

var keywordSet = toSet(keywordTerms)
var materialSet = toSet(materialTerms)
var provinceSet = toSet(provinceNames)

func toSet(terms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		set[t] = struct{}{}
	}
	return set
}
