package compress_pure

// Compress4 is Compress1 with four rounds per loop iteration.
func Compress4(s *[8]uint32, m, k *[64]uint32) {
	a, b, c, d := s[0], s[1], s[2], s[3]
	e, f, g, h := s[4], s[5], s[6], s[7]

	var t1, t2 uint32
	for i := 0; i < 64; i += 4 {
		t1 = h + ep1(e) + ch(e, f, g) + k[i] + m[i]
		t2 = ep0(a) + maj(a, b, c)
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2

		t1 = h + ep1(e) + ch(e, f, g) + k[i+1] + m[i+1]
		t2 = ep0(a) + maj(a, b, c)
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2

		t1 = h + ep1(e) + ch(e, f, g) + k[i+2] + m[i+2]
		t2 = ep0(a) + maj(a, b, c)
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2

		t1 = h + ep1(e) + ch(e, f, g) + k[i+3] + m[i+3]
		t2 = ep0(a) + maj(a, b, c)
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	s[0], s[1], s[2], s[3] = a, b, c, d
	s[4], s[5], s[6], s[7] = e, f, g, h
}
