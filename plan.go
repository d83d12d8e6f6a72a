package migrate

// Reconciliation: pure computation of the exact ordered subsequence of
// migrations to execute for a direction and target, kept free of I/O so it
// can be tested against synthetic registries and histories.

// planUp computes the migrations to apply, ascending by title.
// all must be sorted ascending; applied is the current history snapshot.
// An empty target means every pending migration; a target title truncates
// the pending list to everything up to and including it.
func planUp(all []*Migration, applied map[string]bool, target string) ([]*Migration, error) {
	var pending []*Migration
	for _, m := range all {
		if !applied[m.Title] {
			pending = append(pending, m)
		}
	}

	if target == "" {
		return pending, nil
	}

	for i, m := range pending {
		if m.Title == target {
			return pending[:i+1], nil
		}
	}

	if applied[target] {
		return nil, &AlreadyAppliedError{Title: target}
	}
	return nil, &NotFoundError{Title: target}
}

// planDown computes the migrations to revert, descending by title.
// appliedAsc is the history snapshot sorted ascending. An empty target
// means the single most recently applied migration; DownTargetAll means
// every applied one; a target title means everything from the most recent
// back through the target, inclusive. Every selected title must resolve to
// a local migration, otherwise the history no longer matches the local
// files and reverting anything would be unsafe.
func planDown(find func(title string) (*Migration, bool), appliedAsc []string, target string) ([]*Migration, error) {
	var titles []string
	switch target {
	case "":
		if len(appliedAsc) == 0 {
			return nil, nil
		}
		titles = appliedAsc[len(appliedAsc)-1:]
	case DownTargetAll:
		titles = appliedAsc
	default:
		idx := -1
		for i, title := range appliedAsc {
			if title == target {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, &NotFoundError{Title: target}
		}
		titles = appliedAsc[idx:]
	}

	reverting := make([]*Migration, 0, len(titles))
	for i := len(titles) - 1; i >= 0; i-- {
		m, ok := find(titles[i])
		if !ok {
			return nil, &HistoryMismatchError{Title: titles[i]}
		}
		reverting = append(reverting, m)
	}

	return reverting, nil
}
