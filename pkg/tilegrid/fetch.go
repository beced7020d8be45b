package tilegrid

import (
	"fmt"
	"io"
	"net/http"
	"os"
)

// Published grid KML locations for the supported missions.
const (
	// Sentinel2GridURL is the ESA Sentinel-2 tiling grid (GIP_TILPAR) KML.
	Sentinel2GridURL = "https://sentinel.esa.int/documents/247904/1955685/S2A_OPER_GIP_TILPAR_MPC__20151209T095117_V20150622T000000_21000101T000000_B00.kml"

	// Landsat8GridURL is the USGS WRS-2 world bounds KML.
	Landsat8GridURL = "https://landsat.usgs.gov/sites/default/files/documents/WRS-2_bound_world.kml"
)

// FetchKML downloads a grid KML to the given path.
//
// Example:
//
//	if err := tilegrid.FetchKML(tilegrid.Sentinel2GridURL, "/tmp/s2_grid.kml"); err != nil {
//	    log.Fatal(err)
//	}
//	registry := tilegrid.NewSentinel2Registry()
//	if err := registry.IngestKMLFile("/tmp/s2_grid.kml"); err != nil {
//	    log.Fatal(err)
//	}
func FetchKML(url, savePath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("download grid kml: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: HTTP %d", resp.StatusCode)
	}

	outFile, err := os.Create(savePath)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	_, err = io.Copy(outFile, resp.Body)
	if closeErr := outFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("save grid kml: %w", err)
	}
	return nil
}
