/*
Package wilayah is a cascading filter over Indonesia's administrative hierarchy:
province (provinsi), city/regency (kota/kabupaten) and district (kecamatan).

A Selection holds at most one id per level. Changing a level clears every level
below it, so the selection never points at a district outside its regency or a
regency outside its province. Candidate lists are derived from a static dataset
on every view; nothing is cached.

# Usage

	eng, err := wilayah.New("data/indonesia_regions.json")
	if err != nil {
		log.Fatal(err)
	}
	if err := eng.Reload(ctx); err != nil {
		log.Fatal(err)
	}

	sel, _ := wilayah.ParseQuery("province=32")
	sel, _ = eng.Apply(ctx, sel, domain.Action{Type: domain.ActionSetRegency, ID: domain.Some(3273)})
	view, _ := eng.View(ctx, sel)

	fmt.Println(wilayah.Query(sel)) // province=32&regency=3273
	fmt.Println(view.Districts)     // the kecamatan of Kota Bandung

# Hosts

The same engine drives the server-rendered page and JSON API (pkg/adapters/http),
the MCP tool server (pkg/adapters/mcp) and the terminal browser of the wilayah
command. Hosts without an address bar keep selections in a session store
(pkg/adapters/memory, pkg/adapters/file, pkg/adapters/redis) through
pkg/session.
*/
package wilayah
