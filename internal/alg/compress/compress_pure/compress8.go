package compress_pure

// Compress8 is Compress1 with eight rounds per loop iteration. Each t1 is
// accumulated one term at a time so the additions issue separately.
func Compress8(s *[8]uint32, m, k *[64]uint32) {
	a, b, c, d := s[0], s[1], s[2], s[3]
	e, f, g, h := s[4], s[5], s[6], s[7]

	var t1, t2 uint32
	for i := 0; i < 64; i += 8 {
		t1 = h
		t1 += ep1(e)
		t1 += ch(e, f, g)
		t1 += k[i]
		t1 += m[i]
		t2 = ep0(a)
		t2 += maj(a, b, c)
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2

		t1 = h
		t1 += ep1(e)
		t1 += ch(e, f, g)
		t1 += k[i+1]
		t1 += m[i+1]
		t2 = ep0(a)
		t2 += maj(a, b, c)
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2

		t1 = h
		t1 += ep1(e)
		t1 += ch(e, f, g)
		t1 += k[i+2]
		t1 += m[i+2]
		t2 = ep0(a)
		t2 += maj(a, b, c)
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2

		t1 = h
		t1 += ep1(e)
		t1 += ch(e, f, g)
		t1 += k[i+3]
		t1 += m[i+3]
		t2 = ep0(a)
		t2 += maj(a, b, c)
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2

		t1 = h
		t1 += ep1(e)
		t1 += ch(e, f, g)
		t1 += k[i+4]
		t1 += m[i+4]
		t2 = ep0(a)
		t2 += maj(a, b, c)
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2

		t1 = h
		t1 += ep1(e)
		t1 += ch(e, f, g)
		t1 += k[i+5]
		t1 += m[i+5]
		t2 = ep0(a)
		t2 += maj(a, b, c)
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2

		t1 = h
		t1 += ep1(e)
		t1 += ch(e, f, g)
		t1 += k[i+6]
		t1 += m[i+6]
		t2 = ep0(a)
		t2 += maj(a, b, c)
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2

		t1 = h
		t1 += ep1(e)
		t1 += ch(e, f, g)
		t1 += k[i+7]
		t1 += m[i+7]
		t2 = ep0(a)
		t2 += maj(a, b, c)
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
