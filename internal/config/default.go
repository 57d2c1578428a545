package config

// Default returns the stock form: a pan-genome tab, a novel-region tab and
// a loci tab over a small set of bacterial genomes.
func Default() Config {
	genomes := []Item{
		{ID: "NC_000913.3", Label: "Escherichia coli K-12 MG1655"},
		{ID: "NC_002695.2", Label: "Escherichia coli O157:H7 Sakai"},
		{ID: "NC_011750.1", Label: "Escherichia coli IAI39"},
		{ID: "NC_003197.2", Label: "Salmonella enterica Typhimurium LT2"},
		{ID: "NC_004337.2", Label: "Shigella flexneri 2a 301"},
		{ID: "NC_009648.1", Label: "Klebsiella pneumoniae MGH 78578"},
	}
	return Config{
		Version: CurrentVersion,
		Lists: []List{
			{Name: "query", Title: "Query genomes", Items: genomes},
			{Name: "reference", Title: "Reference genomes", Items: genomes},
			{Name: "query-novel", Title: "Novel-region queries", Items: genomes},
		},
		Fields: []Field{
			{Name: "querySelected", Lists: []string{"query", "query-novel"}},
			{Name: "referenceSelected", Lists: []string{"reference"}},
		},
		Tabs: []Tab{
			{Title: "Pan-genome", Lists: []string{"query", "reference"}},
			{Title: "Novel regions", Lists: []string{"query", "query-novel", "reference"}},
			{Title: "Loci", Lists: []string{"query"}},
		},
	}
}
