package shift

// Evaluate は候補シフトのバッチを、既知の社員 ID と永続化済みシフトに対して検証します。
//
// 1 パス目は形状 (終了 > 開始) と参照 (社員の存在) を投入順に検査し、最初に見つかった違反の
// 種類で同じ種類の候補をすべて返します。1 パス目が通った場合のみ 2 パス目で重複を検査します。
// 重複の比較対象は同一社員の永続化済みシフト (このバッチで更新される行を除く) と
// 同一社員の他の候補で、全ペアを検査します。
func Evaluate(candidates []Shift, knownEmployees []int64, persisted []Shift) error {
	kind, offending := evaluate(candidates, knownEmployees, persisted)
	if kind == 0 {
		return nil
	}
	return NewViolationError(kind, pick(candidates, offending))
}

// evaluate は違反の種類と、違反した候補のインデックスを投入順で返します。
func evaluate(candidates []Shift, knownEmployees []int64, persisted []Shift) (ViolationKind, []int) {
	if len(candidates) == 0 {
		return 0, nil
	}

	if kind, offending := checkShapeAndReferences(candidates, knownEmployees); kind != 0 {
		return kind, offending
	}

	if offending := checkOverlaps(candidates, persisted); len(offending) > 0 {
		return KindOverlappingShifts, offending
	}
	return 0, nil
}

func pick(shifts []Shift, indexes []int) []Shift {
	picked := make([]Shift, 0, len(indexes))
	for _, i := range indexes {
		picked = append(picked, shifts[i])
	}
	return picked
}

func checkShapeAndReferences(candidates []Shift, knownEmployees []int64) (ViolationKind, []int) {
	known := make(map[int64]struct{}, len(knownEmployees))
	for _, id := range knownEmployees {
		known[id] = struct{}{}
	}

	var (
		kind      ViolationKind
		offending []int
	)
	for i, c := range candidates {
		k := shapeOrReferenceViolation(c, known)
		if k == 0 {
			continue
		}
		if kind == 0 {
			kind = k
		}
		if k == kind {
			offending = append(offending, i)
		}
	}

	return kind, offending
}

func shapeOrReferenceViolation(c Shift, known map[int64]struct{}) ViolationKind {
	if IsDegenerate(c) {
		return KindEndBeforeOrAtStart
	}
	if _, ok := known[c.EmployeeID]; !ok {
		return KindEmployeeNotFound
	}
	return 0
}

func checkOverlaps(candidates []Shift, persisted []Shift) []int {
	replaced := make(map[int64]struct{}, len(candidates))
	for _, c := range candidates {
		if !c.IsNew() {
			replaced[c.ID] = struct{}{}
		}
	}

	persistedByEmployee := make(map[int64][]Interval)
	for _, p := range persisted {
		if _, ok := replaced[p.ID]; ok {
			continue
		}
		persistedByEmployee[p.EmployeeID] = append(persistedByEmployee[p.EmployeeID], p.Interval())
	}

	candidatesByEmployee := make(map[int64][]int)
	for i, c := range candidates {
		candidatesByEmployee[c.EmployeeID] = append(candidatesByEmployee[c.EmployeeID], i)
	}

	var offending []int
	for i, c := range candidates {
		if overlapsAny(c.Interval(), persistedByEmployee[c.EmployeeID]) ||
			overlapsSibling(i, candidates, candidatesByEmployee[c.EmployeeID]) {
			offending = append(offending, i)
		}
	}
	return offending
}

func overlapsAny(target Interval, others []Interval) bool {
	for _, other := range others {
		if Overlaps(target, other) {
			return true
		}
	}
	return false
}

func overlapsSibling(self int, candidates []Shift, siblings []int) bool {
	target := candidates[self].Interval()
	for _, j := range siblings {
		if j == self {
			continue
		}
		if Overlaps(target, candidates[j].Interval()) {
			return true
		}
	}
	return false
}
