package furnidata

// AliasPair links a canonical class name to another class name that ships
// the same asset.
type AliasPair struct {
	Canonical string `json:"canonical" yaml:"canonical"`
	Alias     string `json:"alias" yaml:"alias"`
}

// DefaultAliases is the curated equivalence table applied after decoding.
// Left column: the name found in furnidata. Right column: the name clients
// and emulators also request for the same asset.
var DefaultAliases = []AliasPair{
	{"shelves_norja", "shelves_norja_cc"},
	{"chair_norja", "chair_norja_cc"},
	{"couch_norja", "couch_norja_cc"},
	{"table_norja_med", "table_norja_med_cc"},
	{"soft_sofa_norja", "soft_sofa_norja_cc"},
	{"soft_sofachair_norja", "soft_sofachair_norja_cc"},
	{"divider_nor1", "divider_nor1_cc"},
	{"divider_nor2", "divider_nor2_cc"},
	{"divider_nor3", "divider_nor3_cc"},
	{"divider_nor4", "divider_nor4_cc"},
	{"divider_nor5", "divider_nor5_cc"},
	{"chair_polyfon", "chair_polyfon_cc"},
	{"sofa_polyfon", "sofa_polyfon_cc"},
	{"sofachair_polyfon", "sofachair_polyfon_cc"},
	{"bed_polyfon", "bed_polyfon_cc"},
	{"bed_polyfon_one", "bed_polyfon_one_cc"},
	{"bardesk_polyfon", "bardesk_polyfon_cc"},
	{"bardeskcorner_polyfon", "bardeskcorner_polyfon_cc"},
	{"divider_poly3", "divider_poly3_cc"},
	{"smooth_table_polyfon", "smooth_table_polyfon_cc"},
	{"chair_silo", "chair_silo_cc"},
	{"sofa_silo", "sofa_silo_cc"},
	{"sofachair_silo", "sofachair_silo_cc"},
	{"table_silo_small", "table_silo_small_cc"},
	{"table_silo_med", "table_silo_med_cc"},
	{"divider_silo1", "divider_silo1_cc"},
	{"divider_silo2", "divider_silo2_cc"},
	{"divider_silo3", "divider_silo3_cc"},
	{"chair_plasto", "chair_plasty"},
	{"table_plasto_4leg", "table_plasty_4leg"},
	{"table_plasto_round", "table_plasty_round"},
	{"table_plasto_square", "table_plasty_square"},
	{"table_plasto_bigsquare", "table_plasty_bigsquare"},
	{"table_plasto_4leg_med", "table_plasty_4leg_med"},
	{"carpet_standard", "carpet_standard_cc"},
	{"carpet_soft", "carpet_soft_cc"},
	{"carpet_polar", "carpet_polar_cc"},
	{"carpet_armas", "carpet_armas_cc"},
	{"doormat_love", "doormat_love_cc"},
	{"doormat_plain", "doormat_plain_cc"},
	{"pillow", "pillow_cc"},
	{"chair_basic", "chair_basic_cc"},
	{"bed_budget", "bed_budget_cc"},
	{"bed_budget_one", "bed_budget_one_cc"},
	{"rare_dragonlamp", "rare_dragonlamp_cc"},
	{"rare_fan", "rare_fan_cc"},
	{"rare_parasol", "rare_parasol_cc"},
	{"rare_icecream", "rare_icecream_cc"},
	{"rare_elephant_statue", "rare_elephant_statue_cc"},
	{"rare_fountain", "rare_fountain_cc"},
	{"hc_chr", "hcsohva"},
	{"hc_tbl", "hcpoyta"},
}

// ApplyAliases repoints matched items at their alias and appends a clone for
// every matched pair. For each pair only the first item whose FileName equals
// the canonical name is used; pairs without a match are skipped. The grown
// slice is returned, as with append.
func ApplyAliases(items []Item, pairs []AliasPair) []Item {
	for _, pair := range pairs {
		idx := indexByFileName(items, pair.Canonical)
		if idx == -1 {
			continue
		}

		items[idx].Alias = pair.Alias

		clone := items[idx]
		clone.ClassName = pair.Alias
		clone.FileName = pair.Alias
		clone.Alias = pair.Canonical
		items = append(items, clone)
	}
	return items
}

func indexByFileName(items []Item, fileName string) int {
	for i := range items {
		if items[i].FileName == fileName {
			return i
		}
	}
	return -1
}
