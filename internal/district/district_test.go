package district

import (
	"sync"
	"testing"

	"github.com/rgehrsitz/imtgo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDistrictInfo(t *testing.T) {
	lisboa, ok := GetDistrictInfo("Lisboa")
	require.True(t, ok)
	assert.Equal(t, "LIS", lisboa.Code)
	assert.Equal(t, "Lisboa", lisboa.Region)
	assert.Contains(t, lisboa.Cities, "Sintra")

	evora, ok := GetDistrictInfo("Évora")
	require.True(t, ok)
	assert.Equal(t, "EVR", evora.Code)

	_, ok = GetDistrictInfo("Unknown")
	assert.False(t, ok)
}

func TestGetDistrictInfo_NoNormalisation(t *testing.T) {
	for _, name := range []string{"lisboa", "LISBOA", "Evora", " Lisboa", "Lisboa "} {
		_, ok := GetDistrictInfo(name)
		assert.False(t, ok, name)
	}
}

func TestGetAllDistricts(t *testing.T) {
	names := GetAllDistricts()

	require.Len(t, names, 20)
	assert.Equal(t, "Aveiro", names[0])
	assert.Equal(t, "Madeira", names[19])
	assert.Contains(t, names, "Viana do Castelo")
	assert.Contains(t, names, "Açores")
}

func TestGetCitiesByDistrict(t *testing.T) {
	assert.Equal(t, []string{"Faro", "Portimão", "Loulé", "Albufeira", "Lagos", "Tavira"}, GetCitiesByDistrict("Faro"))

	unknown := GetCitiesByDistrict("Atlantis")
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestCallersCannotMutateTable(t *testing.T) {
	cities := GetCitiesByDistrict("Porto")
	cities[0] = "Gotham"

	d, _ := GetDistrictInfo("Porto")
	d.Cities[1] = "Metropolis"
	d.Code = "XXX"

	all := All()
	all[12].Name = "Changed"

	again, ok := GetDistrictInfo("Porto")
	require.True(t, ok)
	assert.Equal(t, "PRT", again.Code)
	assert.Equal(t, "Porto", again.Cities[0])
	assert.Equal(t, "Vila Nova de Gaia", again.Cities[1])
	assert.Equal(t, "Porto", GetAllDistricts()[12])
}

func TestCodesAreUnique(t *testing.T) {
	seen := map[string]string{}
	for _, d := range All() {
		prev, dup := seen[d.Code]
		assert.False(t, dup, "code %s shared by %s and %s", d.Code, prev, d.Name)
		seen[d.Code] = d.Name
		assert.NotEmpty(t, d.Cities, d.Name)
	}
}

func TestLocationFor(t *testing.T) {
	assert.Equal(t, domain.LocationAzores, LocationFor("Açores"))
	assert.Equal(t, domain.LocationMadeira, LocationFor("Madeira"))
	assert.Equal(t, domain.LocationMainland, LocationFor("Lisboa"))
}

func TestConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, name := range GetAllDistricts() {
				_, ok := GetDistrictInfo(name)
				assert.True(t, ok)
			}
		}()
	}
	wg.Wait()
}
