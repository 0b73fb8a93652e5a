// Package district holds the read-only table of Portuguese districts and
// autonomous regions. The table is built once at init and only copies
// ever leave the package.
package district

import "github.com/rgehrsitz/imtgo/internal/domain"

var table = []domain.District{
	{Name: "Aveiro", Code: "AVR", Region: "Centro", Cities: []string{"Aveiro", "Ovar", "Águeda", "Ílhavo", "Oliveira de Azeméis"}},
	{Name: "Beja", Code: "BEJ", Region: "Alentejo", Cities: []string{"Beja", "Castro Verde", "Serpa", "Moura", "Odemira"}},
	{Name: "Braga", Code: "BRG", Region: "Norte", Cities: []string{"Braga", "Guimarães", "Barcelos", "Famalicão", "Esposende"}},
	{Name: "Bragança", Code: "BRN", Region: "Norte", Cities: []string{"Bragança", "Mirandela", "Macedo de Cavaleiros", "Miranda do Douro"}},
	{Name: "Castelo Branco", Code: "CBR", Region: "Centro", Cities: []string{"Castelo Branco", "Covilhã", "Fundão", "Belmonte"}},
	{Name: "Coimbra", Code: "CMB", Region: "Centro", Cities: []string{"Coimbra", "Figueira da Foz", "Cantanhede", "Lousã"}},
	{Name: "Évora", Code: "EVR", Region: "Alentejo", Cities: []string{"Évora", "Estremoz", "Montemor-o-Novo", "Vendas Novas"}},
	{Name: "Faro", Code: "FAR", Region: "Algarve", Cities: []string{"Faro", "Portimão", "Loulé", "Albufeira", "Lagos", "Tavira"}},
	{Name: "Guarda", Code: "GRD", Region: "Centro", Cities: []string{"Guarda", "Seia", "Gouveia", "Manteigas"}},
	{Name: "Leiria", Code: "LEI", Region: "Centro", Cities: []string{"Leiria", "Marinha Grande", "Alcobaça", "Nazaré", "Caldas da Rainha"}},
	{Name: "Lisboa", Code: "LIS", Region: "Lisboa", Cities: []string{"Lisboa", "Sintra", "Cascais", "Loures", "Oeiras", "Amadora", "Odivelas"}},
	{Name: "Portalegre", Code: "PTL", Region: "Alentejo", Cities: []string{"Portalegre", "Elvas", "Ponte de Sor", "Campo Maior"}},
	{Name: "Porto", Code: "PRT", Region: "Norte", Cities: []string{"Porto", "Vila Nova de Gaia", "Matosinhos", "Gondomar", "Maia", "Valongo"}},
	{Name: "Santarém", Code: "STR", Region: "Centro", Cities: []string{"Santarém", "Torres Novas", "Entroncamento", "Tomar", "Almeirim"}},
	{Name: "Setúbal", Code: "STB", Region: "Lisboa", Cities: []string{"Setúbal", "Almada", "Barreiro", "Seixal", "Sesimbra"}},
	{Name: "Viana do Castelo", Code: "VCT", Region: "Norte", Cities: []string{"Viana do Castelo", "Ponte de Lima", "Caminha", "Valença"}},
	{Name: "Vila Real", Code: "VRL", Region: "Norte", Cities: []string{"Vila Real", "Chaves", "Peso da Régua", "Lamego"}},
	{Name: "Viseu", Code: "VIS", Region: "Centro", Cities: []string{"Viseu", "Lamego", "Tondela", "São Pedro do Sul"}},
	{Name: "Açores", Code: "AZR", Region: "Açores", Cities: []string{"Ponta Delgada", "Angra do Heroísmo", "Horta"}},
	{Name: "Madeira", Code: "MDR", Region: "Madeira", Cities: []string{"Funchal", "Câmara de Lobos", "Machico", "Santa Cruz"}},
}

var byName = func() map[string]int {
	m := make(map[string]int, len(table))
	for i, d := range table {
		m[d.Name] = i
	}
	return m
}()

// GetDistrictInfo looks up a district by its canonical name. Matching is
// exact and case-sensitive ("Évora", not "Evora").
func GetDistrictInfo(name string) (domain.District, bool) {
	i, ok := byName[name]
	if !ok {
		return domain.District{}, false
	}
	return clone(table[i]), true
}

// GetAllDistricts returns every district name in table order
func GetAllDistricts() []string {
	names := make([]string, len(table))
	for i, d := range table {
		names[i] = d.Name
	}
	return names
}

// GetCitiesByDistrict returns the district's cities, or an empty slice
// for an unknown district
func GetCitiesByDistrict(name string) []string {
	d, ok := GetDistrictInfo(name)
	if !ok {
		return []string{}
	}
	return d.Cities
}

// All returns a copy of the whole table
func All() []domain.District {
	out := make([]domain.District, len(table))
	for i, d := range table {
		out[i] = clone(d)
	}
	return out
}

// LocationFor maps a district to the IMT location used for the island
// reduction
func LocationFor(name string) domain.Location {
	switch name {
	case "Açores":
		return domain.LocationAzores
	case "Madeira":
		return domain.LocationMadeira
	default:
		return domain.LocationMainland
	}
}

func clone(d domain.District) domain.District {
	d.Cities = append([]string(nil), d.Cities...)
	return d
}
