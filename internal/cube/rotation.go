package cube

// ApplyMove returns the state reached by turning one face of s by m.
// Each quarter turn is a hand-encoded 24-slot permutation plus
// per-sticker orientation deltas - there is no generic ring/slice
// engine underneath this, by design: a 2x2x2 cube has exactly twelve
// quarter turns, and writing each one out is both fast and easy to
// verify against a reference by inspection.
func ApplyMove(s State, m Move) State {
	if m.Turn == Double {
		s = applyQuarterCW(s, m.Face)
		return applyQuarterCW(s, m.Face)
	}
	if m.Turn == CCW {
		return applyQuarterCCW(s, m.Face)
	}
	return applyQuarterCW(s, m.Face)
}

// ApplyMoves folds ApplyMove over a sequence of moves in order.
func ApplyMoves(s State, moves []Move) State {
	for _, m := range moves {
		s = ApplyMove(s, m)
	}
	return s
}

func applyQuarterCW(s State, f Face) State {
	switch f {
	case Up:
		return rotateU(s)
	case Down:
		return rotateD(s)
	case Left:
		return rotateL(s)
	case Right:
		return rotateR(s)
	case Front:
		return rotateF(s)
	case Back:
		return rotateB(s)
	default:
		return s
	}
}

func applyQuarterCCW(s State, f Face) State {
	switch f {
	case Up:
		return rotateUp(s)
	case Down:
		return rotateDp(s)
	case Left:
		return rotateLp(s)
	case Right:
		return rotateRp(s)
	case Front:
		return rotateFp(s)
	case Back:
		return rotateBp(s)
	default:
		return s
	}
}

// rotateFaceCW cycles a face's own four stickers clockwise (slot order
// is TL=0,TR=1,BL=2,BR=3: TL->TR->BR->BL->TL) and bumps every one of
// the four by orientDelta quarter turns.
func rotateFaceCW(s *State, start, orientDelta int) {
	temp := s.Stickers[start]
	s.Stickers[start] = s.Stickers[start+2]
	s.Stickers[start+2] = s.Stickers[start+3]
	s.Stickers[start+3] = s.Stickers[start+1]
	s.Stickers[start+1] = temp

	for i := 0; i < 4; i++ {
		s.Stickers[start+i] = s.Stickers[start+i].rotateBy(orientDelta)
	}
}

// rotateFaceCCW is the inverse cycle of rotateFaceCW.
func rotateFaceCCW(s *State, start, orientDelta int) {
	temp := s.Stickers[start]
	s.Stickers[start] = s.Stickers[start+1]
	s.Stickers[start+1] = s.Stickers[start+3]
	s.Stickers[start+3] = s.Stickers[start+2]
	s.Stickers[start+2] = temp

	for i := 0; i < 4; i++ {
		s.Stickers[start+i] = s.Stickers[start+i].rotateBy(-orientDelta)
	}
}

func rotateR(s State) State {
	rotateFaceCW(&s, 12, 3)

	temp0 := s.Stickers[1]
	temp1 := s.Stickers[3]

	s.Stickers[1] = s.Stickers[17]
	s.Stickers[3] = s.Stickers[19]

	s.Stickers[17] = s.Stickers[5]
	s.Stickers[19] = s.Stickers[7]

	s.Stickers[5] = s.Stickers[22].RotateCW().RotateCW()
	s.Stickers[7] = s.Stickers[20].RotateCW().RotateCW()

	s.Stickers[22] = temp0.RotateCW().RotateCW()
	s.Stickers[20] = temp1.RotateCW().RotateCW()

	return s
}

func rotateRp(s State) State {
	rotateFaceCCW(&s, 12, 3)

	temp0 := s.Stickers[1]
	temp1 := s.Stickers[3]

	s.Stickers[1] = s.Stickers[22].RotateCW().RotateCW()
	s.Stickers[3] = s.Stickers[20].RotateCW().RotateCW()

	s.Stickers[22] = s.Stickers[5].RotateCW().RotateCW()
	s.Stickers[20] = s.Stickers[7].RotateCW().RotateCW()

	s.Stickers[5] = s.Stickers[17]
	s.Stickers[7] = s.Stickers[19]

	s.Stickers[17] = temp0
	s.Stickers[19] = temp1

	return s
}

func rotateL(s State) State {
	rotateFaceCW(&s, 8, 3)

	temp0 := s.Stickers[0]
	temp1 := s.Stickers[2]

	s.Stickers[0] = s.Stickers[23].RotateCW().RotateCW()
	s.Stickers[2] = s.Stickers[21].RotateCW().RotateCW()

	s.Stickers[23] = s.Stickers[4].RotateCW().RotateCW()
	s.Stickers[21] = s.Stickers[6].RotateCW().RotateCW()

	s.Stickers[4] = s.Stickers[16]
	s.Stickers[6] = s.Stickers[18]

	s.Stickers[16] = temp0
	s.Stickers[18] = temp1

	return s
}

func rotateLp(s State) State {
	rotateFaceCCW(&s, 8, 3)

	temp0 := s.Stickers[0]
	temp1 := s.Stickers[2]

	s.Stickers[0] = s.Stickers[16]
	s.Stickers[2] = s.Stickers[18]

	s.Stickers[16] = s.Stickers[4]
	s.Stickers[18] = s.Stickers[6]

	s.Stickers[4] = s.Stickers[23].RotateCW().RotateCW()
	s.Stickers[6] = s.Stickers[21].RotateCW().RotateCW()

	s.Stickers[23] = temp0.RotateCW().RotateCW()
	s.Stickers[21] = temp1.RotateCW().RotateCW()

	return s
}

func rotateU(s State) State {
	rotateFaceCW(&s, 0, 1)

	temp0 := s.Stickers[16]
	temp1 := s.Stickers[17]

	s.Stickers[16] = s.Stickers[12]
	s.Stickers[17] = s.Stickers[13]

	s.Stickers[12] = s.Stickers[20]
	s.Stickers[13] = s.Stickers[21]

	s.Stickers[20] = s.Stickers[8]
	s.Stickers[21] = s.Stickers[9]

	s.Stickers[8] = temp0
	s.Stickers[9] = temp1

	return s
}

func rotateUp(s State) State {
	rotateFaceCCW(&s, 0, 1)

	temp0 := s.Stickers[16]
	temp1 := s.Stickers[17]

	s.Stickers[16] = s.Stickers[8]
	s.Stickers[17] = s.Stickers[9]

	s.Stickers[8] = s.Stickers[20]
	s.Stickers[9] = s.Stickers[21]

	s.Stickers[20] = s.Stickers[12]
	s.Stickers[21] = s.Stickers[13]

	s.Stickers[12] = temp0
	s.Stickers[13] = temp1

	return s
}

func rotateD(s State) State {
	rotateFaceCW(&s, 4, 1)

	temp0 := s.Stickers[18]
	temp1 := s.Stickers[19]

	s.Stickers[18] = s.Stickers[10]
	s.Stickers[19] = s.Stickers[11]

	s.Stickers[10] = s.Stickers[22]
	s.Stickers[11] = s.Stickers[23]

	s.Stickers[22] = s.Stickers[14]
	s.Stickers[23] = s.Stickers[15]

	s.Stickers[14] = temp0
	s.Stickers[15] = temp1

	return s
}

func rotateDp(s State) State {
	rotateFaceCCW(&s, 4, 1)

	temp0 := s.Stickers[18]
	temp1 := s.Stickers[19]

	s.Stickers[18] = s.Stickers[14]
	s.Stickers[19] = s.Stickers[15]

	s.Stickers[14] = s.Stickers[22]
	s.Stickers[15] = s.Stickers[23]

	s.Stickers[22] = s.Stickers[10]
	s.Stickers[23] = s.Stickers[11]

	s.Stickers[10] = temp0
	s.Stickers[11] = temp1

	return s
}

func rotateF(s State) State {
	rotateFaceCW(&s, 16, 1)

	temp0 := s.Stickers[2]
	temp1 := s.Stickers[3]

	// U <- L <- D <- R <- U
	s.Stickers[2] = s.Stickers[11].RotateCW()
	s.Stickers[3] = s.Stickers[9].RotateCW()

	s.Stickers[11] = s.Stickers[5].RotateCCW()
	s.Stickers[9] = s.Stickers[4].RotateCCW()

	s.Stickers[5] = s.Stickers[12].RotateCW()
	s.Stickers[4] = s.Stickers[14].RotateCW()

	s.Stickers[12] = temp0.RotateCCW()
	s.Stickers[14] = temp1.RotateCCW()

	return s
}

func rotateFp(s State) State {
	rotateFaceCCW(&s, 16, 1)

	temp0 := s.Stickers[2]
	temp1 := s.Stickers[3]

	// U <- R <- D <- L <- U
	s.Stickers[2] = s.Stickers[12].RotateCW()
	s.Stickers[3] = s.Stickers[14].RotateCW()

	s.Stickers[12] = s.Stickers[5].RotateCCW()
	s.Stickers[14] = s.Stickers[4].RotateCCW()

	s.Stickers[5] = s.Stickers[11].RotateCW()
	s.Stickers[4] = s.Stickers[9].RotateCW()

	s.Stickers[9] = temp1.RotateCCW()
	s.Stickers[11] = temp0.RotateCCW()

	return s
}

func rotateB(s State) State {
	rotateFaceCW(&s, 20, 1)

	temp0 := s.Stickers[0]
	temp1 := s.Stickers[1]

	// U <- R <- D <- L <- U
	s.Stickers[0] = s.Stickers[13].RotateCCW()
	s.Stickers[1] = s.Stickers[15].RotateCCW()

	s.Stickers[13] = s.Stickers[7].RotateCW()
	s.Stickers[15] = s.Stickers[6].RotateCW()

	s.Stickers[7] = s.Stickers[10].RotateCCW()
	s.Stickers[6] = s.Stickers[8].RotateCCW()

	s.Stickers[10] = temp0.RotateCW()
	s.Stickers[8] = temp1.RotateCW()

	return s
}

func rotateBp(s State) State {
	rotateFaceCCW(&s, 20, 1)

	temp0 := s.Stickers[0]
	temp1 := s.Stickers[1]

	// U <- L <- D <- R <- U
	s.Stickers[0] = s.Stickers[10].RotateCCW()
	s.Stickers[1] = s.Stickers[8].RotateCCW()

	s.Stickers[10] = s.Stickers[7].RotateCW()
	s.Stickers[8] = s.Stickers[6].RotateCW()

	s.Stickers[7] = s.Stickers[13].RotateCCW()
	s.Stickers[6] = s.Stickers[15].RotateCCW()

	s.Stickers[13] = temp0.RotateCW()
	s.Stickers[15] = temp1.RotateCW()

	return s
}
